package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"legalassist/internal/document"
	"legalassist/internal/knowledge"
	"legalassist/internal/legal"
	"legalassist/internal/model"
	"legalassist/internal/pkg/pdfextract"
)

type seedSearcher struct {
	records []model.LegalKnowledge
}

func (s seedSearcher) Search(keywords []string, category string) ([]model.LegalKnowledge, error) {
	return knowledge.Match(s.records, keywords, category), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "legalctl",
		Short:         "Offline tools for the legal assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	searcher := seedSearcher{records: knowledge.Seed()}
	root.AddCommand(newClassifyCmd(searcher), newAnalyzeCmd(), newSearchCmd(searcher))
	return root
}

func newClassifyCmd(searcher seedSearcher) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text...>",
		Short: "Classify a question and print the assistant's answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := legal.NewResponder(searcher).Respond(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Category: %s\nSource: %s\n\n%s\n", resp.Category, resp.Source, resp.Text)
			if len(resp.Suggestions) > 0 {
				fmt.Fprintln(out, "\nSuggestions:")
				for _, s := range resp.Suggestions {
					fmt.Fprintf(out, "- %s\n", s)
				}
			}
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file|->",
		Short: "Analyze a text or PDF document, or stdin when the argument is -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			a := document.Analyze(document.Normalize(text))
			fmt.Fprintln(cmd.OutOrStdout(), document.Report(a))
			return nil
		},
	}
}

func newSearchCmd(searcher legal.KnowledgeSearcher) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search <keywords...>",
		Short: "Search the built-in knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := strings.ToLower(strings.TrimSpace(category))
			records, err := searcher.Search(legal.SplitSearchTerms(strings.Join(args, " ")), filter)
			if err != nil {
				return fmt.Errorf("search knowledge failed: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "no matching records")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "[%s] %s\n%s\n\n", r.Category, r.Question, r.Answer)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "restrict results to one category")
	return cmd
}

func readDocument(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin failed: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file failed: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdfextract.ExtractText(data)
	}
	return string(data), nil
}
