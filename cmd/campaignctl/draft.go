package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jobboard-ads/internal/adapter/store"
	"jobboard-ads/internal/core/budget"
	"jobboard-ads/internal/core/domain"
)

// contentFlags are the wizard fields shared by draft and edit.
type contentFlags struct {
	objective string
	postID    string
	text      string
	link      string
	media     []string
	country   string
	city      string
	district  string
	category  string
	ageMin    int
	ageMax    int
	total     string
	daily     string
	start     string
	end       string
}

func (f *contentFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.objective, "objective", "", "views, messages, link or followers")
	fs.StringVar(&f.postID, "post", "", "id of the post to promote")
	fs.StringVar(&f.text, "text", "", "ad text")
	fs.StringVar(&f.link, "link", "", "destination link")
	fs.StringSliceVar(&f.media, "image", nil, "image URL, repeatable")
	fs.StringVar(&f.country, "country", "", "audience country")
	fs.StringVar(&f.city, "city", "", "audience city")
	fs.StringVar(&f.district, "district", "", "audience district")
	fs.StringVar(&f.category, "category", "", "audience category")
	fs.IntVar(&f.ageMin, "age-min", 0, "minimum audience age")
	fs.IntVar(&f.ageMax, "age-max", 0, "maximum audience age")
	fs.StringVar(&f.total, "total", "", `total budget, e.g. "50 000"`)
	fs.StringVar(&f.daily, "daily", "", "daily budget")
	fs.StringVar(&f.start, "start", "", "start date, YYYY-MM-DD")
	fs.StringVar(&f.end, "end", "", "end date, YYYY-MM-DD")
}

func (f *contentFlags) creative(fs *pflag.FlagSet, c domain.Creative) (domain.Creative, bool) {
	changed := false
	if fs.Changed("text") {
		c.Text, changed = f.text, true
	}
	if fs.Changed("link") {
		c.Link, changed = f.link, true
	}
	if fs.Changed("image") {
		c.Media = c.Media[:0:0]
		for _, u := range f.media {
			c.Media = append(c.Media, domain.Media{URL: u, Type: domain.MediaImage})
		}
		changed = true
	}
	return c, changed
}

func (f *contentFlags) audience(fs *pflag.FlagSet, a domain.Audience) (domain.Audience, bool) {
	changed := false
	if fs.Changed("country") {
		a.Country, changed = f.country, true
	}
	if fs.Changed("city") {
		a.City, changed = f.city, true
	}
	if fs.Changed("district") {
		a.District, changed = f.district, true
	}
	if fs.Changed("category") {
		a.Category, changed = f.category, true
	}
	if fs.Changed("age-min") {
		v := f.ageMin
		a.AgeMin, changed = &v, true
	}
	if fs.Changed("age-max") {
		v := f.ageMax
		a.AgeMax, changed = &v, true
	}
	return a, changed
}

func (f *contentFlags) budget(fs *pflag.FlagSet, b domain.Budget) (domain.Budget, bool, error) {
	changed := false
	var err error
	if fs.Changed("total") {
		if b.Total, err = budget.ParseAmount(f.total); err != nil {
			return b, false, err
		}
		changed = true
	}
	if fs.Changed("daily") {
		if b.Daily, err = budget.ParseAmount(f.daily); err != nil {
			return b, false, err
		}
		changed = true
	}
	if fs.Changed("start") {
		if b.StartDate, err = budget.ParseDate(f.start); err != nil {
			return b, false, err
		}
		changed = true
	}
	if fs.Changed("end") {
		if b.EndDate, err = budget.ParseDate(f.end); err != nil {
			return b, false, err
		}
		changed = true
	}
	return b, changed, nil
}

func draftCommand(a *app) *cobra.Command {
	var (
		flags contentFlags
		mode  string
		page  string
		reset bool
	)
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Fill in the campaign wizard; unset flags keep their saved value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			d := domain.Draft{Mode: domain.DraftInline}
			if !reset {
				saved, err := s.LoadDraft(cmd.Context())
				if err != nil {
					return err
				}
				if saved != nil {
					d = *saved
				}
			}

			fs := cmd.Flags()
			if fs.Changed("mode") {
				d.Mode = domain.DraftMode(mode)
			}
			if fs.Changed("page") {
				d.PageID = page
			}
			if fs.Changed("objective") {
				d.Objective = domain.Objective(flags.objective)
			}
			if fs.Changed("post") {
				d.PostID = flags.postID
			}
			d.Creative, _ = flags.creative(fs, d.Creative)
			d.Audience, _ = flags.audience(fs, d.Audience)
			if d.Budget, _, err = flags.budget(fs, d.Budget); err != nil {
				return err
			}

			if err = s.SaveDraft(cmd.Context(), d); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), d)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&mode, "mode", string(domain.DraftInline), "post or inline")
	cmd.Flags().StringVar(&page, "page", "", "run the campaign for this page instead of the profile")
	cmd.Flags().BoolVar(&reset, "reset", false, "start from an empty draft")
	return cmd
}

func createCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Turn the saved draft into a local draft campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			c, err := s.CreateFromDraft(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
}

func editCommand(a *app) *cobra.Command {
	var flags contentFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a campaign that has not been launched yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			current, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			var patch store.CampaignPatch
			if fs.Changed("objective") {
				o := domain.Objective(flags.objective)
				patch.Objective = &o
			}
			if fs.Changed("post") {
				patch.PostID = &flags.postID
			}
			if c, ok := flags.creative(fs, current.Creative); ok {
				patch.Creative = &c
			}
			if au, ok := flags.audience(fs, current.Audience); ok {
				patch.Audience = &au
			}
			b, ok, err := flags.budget(fs, current.Budget)
			if err != nil {
				return err
			}
			if ok {
				patch.Budget = &b
			}

			c, err := s.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
