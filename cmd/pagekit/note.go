package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-workspace/pagekit/formats"
	"github.com/arc-workspace/pagekit/ports"
	"github.com/arc-workspace/pagekit/templates/editor"
)

var (
	notePage    string
	noteFormat  string
	noteOutDir  string
	noteContent string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Blank note template",
}

var noteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the note",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(notePage, editor.New("Untitled"))
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		doc := sess.Data()
		fmt.Printf("# %s (%d words)\n\n%s\n", doc.Title, editor.WordCount(doc), doc.Content)
		return nil
	},
}

var noteSetCmd = &cobra.Command{
	Use:   "set [title]",
	Short: "Set the note's title and/or content",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openPage(notePage, editor.New("Untitled"))
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		sess.Update(func(d editor.Doc) editor.Doc {
			if len(args) == 1 {
				d = editor.SetTitle(d, args[0])
			}
			if cmd.Flags().Changed("content") {
				d = editor.SetContent(d, noteContent)
			}
			return d
		})
		fmt.Println("✅ Note updated")
		return nil
	},
}

var noteExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the note as a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formats.Get(noteFormat)
		if err != nil {
			return err
		}
		sess, err := openPage(notePage, editor.New("Untitled"))
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		doc := sess.Data()
		downloader := ports.DirDownloader{Dir: noteOutDir}
		name := format.Filename(doc.Title)
		if err := downloader.Download(name, format.Serialize(doc.Title, doc.Content)); err != nil {
			return err
		}
		fmt.Printf("✅ Exported %s\n", name)
		return nil
	},
}

var noteCopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the note text to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formats.Get(noteFormat)
		if err != nil {
			return err
		}
		sess, err := openPage(notePage, editor.New("Untitled"))
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		doc := sess.Data()
		clipboard := ports.WriterClipboard{W: os.Stdout}
		return clipboard.Copy(format.Serialize(doc.Title, doc.Content))
	},
}

func init() {
	noteCmd.PersistentFlags().StringVar(&notePage, "page", "note", "page id within the scope")
	noteCmd.PersistentFlags().StringVar(&noteFormat, "format", "markdown", "document format (markdown, plaintext)")
	noteSetCmd.Flags().StringVar(&noteContent, "content", "", "note content")
	noteExportCmd.Flags().StringVar(&noteOutDir, "out", ".", "output directory")

	noteCmd.AddCommand(noteShowCmd, noteSetCmd, noteExportCmd, noteCopyCmd)
	rootCmd.AddCommand(noteCmd)
}
