package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pixelform/internal/artifact"
	"pixelform/internal/config"
	"pixelform/internal/llm"
	"pixelform/internal/orchestrator"
	"pixelform/internal/session"
)

var (
	generateJSONPaths  []string
	generateImagePaths []string
	generatePrompt     string
	generateOut        string
)

func init() {
	generateCmd.Flags().StringArrayVar(&generateJSONPaths, "json", nil, "structured-data file to include (repeatable)")
	generateCmd.Flags().StringArrayVar(&generateImagePaths, "image", nil, "reference screenshot to include (repeatable)")
	generateCmd.Flags().StringVar(&generatePrompt, "prompt", "", "free-text request (\"start\" triggers the mailer shortcut)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "write the generated document here instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one generation and print the resulting HTML",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var artifacts []artifact.Artifact
	for _, path := range generateJSONPaths {
		a, err := normalizeFile(path, artifact.KindJSON)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, a)
	}
	for _, path := range generateImagePaths {
		a, err := normalizeFile(path, artifact.KindImage)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, a)
	}

	sub, err := session.ResolveSubmission(generatePrompt, artifacts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var client llm.Client
	if cfg.Gemini.APIKey != "" {
		gem, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.VisionModel, cfg.Gemini.GenerateModel)
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
		defer gem.Close()
		client = gem
	}

	out := orchestrator.New(client).Generate(ctx, sub.EffectiveText, artifacts)
	if out.Err != nil {
		return fmt.Errorf("%s", out.Text)
	}
	if !out.IsDocument {
		// guidance or a conversational reply; not a document
		fmt.Fprintln(os.Stderr, out.Text)
		return nil
	}

	if generateOut != "" {
		if err := os.WriteFile(generateOut, []byte(out.Text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", generateOut, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", generateOut)
		return nil
	}
	fmt.Println(out.Text)
	return nil
}

func normalizeFile(path string, kind artifact.Kind) (artifact.Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return artifact.Artifact{}, &artifact.ReadError{Name: path, Err: err}
	}
	defer f.Close()

	size := int64(-1)
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	return artifact.Normalize(path, kind, "", size, f)
}
