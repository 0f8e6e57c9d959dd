package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"crate/internal/textutil"
)

// nameColumnWidth bounds title and name cells so wide tags cannot blow up the
// table layout.
const nameColumnWidth = 48

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show library entity counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, map[string]int{
					"tracks":        len(snap.Tracks),
					"albums":        len(snap.Albums),
					"artists":       len(snap.Artists),
					"album_artists": len(snap.AlbumArtists),
					"genres":        len(snap.Genres),
					"years":         len(snap.ReleaseDates),
				})
			}

			rows := [][]string{
				{"Tracks", strconv.Itoa(len(snap.Tracks))},
				{"Albums", strconv.Itoa(len(snap.Albums))},
				{"Artists", strconv.Itoa(len(snap.Artists))},
				{"Album artists", strconv.Itoa(len(snap.AlbumArtists))},
				{"Genres", strconv.Itoa(len(snap.Genres))},
				{"Years", strconv.Itoa(len(snap.ReleaseDates))},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Entity", "Count"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newAlbumsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List albums sorted by title and year",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			views := albumViews(snap.Albums)

			if jsonOutput {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					strconv.Itoa(view.ID),
					textutil.Truncate(view.Title, nameColumnWidth),
					textutil.Truncate(view.Artist, nameColumnWidth),
					yearCell(view.Year),
					strconv.Itoa(view.Tracks),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Artist", "Year", "Tracks"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	return newNameListCommand(ctx, "artists", "List artists sorted by name", func(cmd *cobra.Command, jsonOutput bool) error {
		snap, err := ctx.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		return renderArtistViews(cmd, artistViews(snap.Artists), jsonOutput)
	})
}

func newAlbumArtistsCommand(ctx *commandContext) *cobra.Command {
	return newNameListCommand(ctx, "albumartists", "List album artists sorted by name", func(cmd *cobra.Command, jsonOutput bool) error {
		snap, err := ctx.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		return renderArtistViews(cmd, artistViews(snap.AlbumArtists), jsonOutput)
	})
}

func newGenresCommand(ctx *commandContext) *cobra.Command {
	return newNameListCommand(ctx, "genres", "List genres with at least one tagged track", func(cmd *cobra.Command, jsonOutput bool) error {
		snap, err := ctx.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		views := genreViews(snap.Genres)
		if jsonOutput {
			return writeJSON(cmd, views)
		}
		rows := make([][]string, 0, len(views))
		for _, view := range views {
			rows = append(rows, []string{
				strconv.Itoa(view.ID),
				textutil.Truncate(view.Name, nameColumnWidth),
				strconv.Itoa(view.Tracks),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"ID", "Genre", "Tracks"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight},
		))
		return nil
	})
}

func newYearsCommand(ctx *commandContext) *cobra.Command {
	return newNameListCommand(ctx, "years", "List release years, most recent first", func(cmd *cobra.Command, jsonOutput bool) error {
		snap, err := ctx.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		views := yearViews(snap.ReleaseDates)
		if jsonOutput {
			return writeJSON(cmd, views)
		}
		rows := make([][]string, 0, len(views))
		for _, view := range views {
			rows = append(rows, []string{
				strconv.Itoa(view.ID),
				yearCell(view.Year),
				strconv.Itoa(view.Tracks),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"ID", "Year", "Tracks"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignRight},
		))
		return nil
	})
}

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "List stored tracks in row-source order",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			views := trackViews(snap)

			if jsonOutput {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					strconv.FormatInt(view.ID, 10),
					textutil.Truncate(view.Title, nameColumnWidth),
					textutil.Truncate(view.Artist, nameColumnWidth),
					textutil.Truncate(view.Album, nameColumnWidth),
					yearCell(view.Year),
					trackNumberCell(view.Disc, view.Number),
					view.Duration,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Artist", "Album", "Year", "Track", "Length"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newNameListCommand(ctx *commandContext, use, short string, run func(cmd *cobra.Command, jsonOutput bool) error) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderArtistViews(cmd *cobra.Command, views []artistView, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, views)
	}
	rows := make([][]string, 0, len(views))
	for _, view := range views {
		rows = append(rows, []string{
			strconv.Itoa(view.ID),
			textutil.Truncate(view.Name, nameColumnWidth),
			strconv.Itoa(view.Tracks),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Name", "Tracks"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
	))
	return nil
}

// yearCell renders a release year, showing the unknown-year bucket as a dash.
func yearCell(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

// trackNumberCell renders disc and track numbers as d.t when a disc is known.
func trackNumberCell(disc, number int) string {
	if number == 0 {
		return "-"
	}
	if disc > 0 {
		return fmt.Sprintf("%d.%d", disc, number)
	}
	return strconv.Itoa(number)
}
