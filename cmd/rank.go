package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ordering-server/geo"
	"ordering-server/models/venue"
	"ordering-server/ranking"

	"github.com/spf13/cobra"
)

var (
	rankFlags catalogFlags
	rankQuery string
	rankSort  string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the catalog ranked for a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := ranking.ParseSortMode(rankSort)
		if err != nil {
			return err
		}

		catalog, err := rankFlags.load(cmd.Context())
		if err != nil {
			return err
		}
		geo.AnnotateDistances(catalog, rankFlags.user(cmd))

		return printVenues(cmd.OutOrStdout(), ranking.Rank(catalog, rankQuery, mode))
	},
}

func init() {
	rankFlags.register(rankCmd)
	rankCmd.Flags().StringVarP(&rankQuery, "query", "q", "", "name filter")
	rankCmd.Flags().StringVar(&rankSort, "sort", "Convenience", "sort mode: Convenience, Wait Time, Distance Away")
}

func printVenues(w io.Writer, venues []*venue.Venue) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDISTANCE\tWAIT\tCOST\tHOURS")
	for _, v := range venues {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d min\t%s\t%s\n",
			v.VenueID, v.VenueName, v.DistanceAsString(), v.WaitTimeMinutes, v.CostAsString(), v.OpenIntervalString())
	}
	return tw.Flush()
}
