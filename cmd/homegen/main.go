package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homegen",
		Short: "Generate the notmylockerroom.com homepage from a content csv",
		Long: `Homegen formats the content provided (as a csv) into html, hitting the
appropriate oEmbed API to get embed code where necessary, and inserts the
result into a page template containing a single '%s' placeholder.

Each row of the content csv represents a content element that will be put
into the page. Columns should be 'type', 'url', and 'quote'.

  type:  one of 'twitter', 'instagram', or 'website'.
  url:   the url of the content (if twitter/instagram, a direct link to
         the tweet/photo).
  quote: for 'website' only, the quote to highlight.`,
	}

	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
