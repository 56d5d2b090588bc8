package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vit0-9/campaign_url_api/pkg/config"
	"github.com/vit0-9/campaign_url_api/pkg/logging"
	"github.com/vit0-9/campaign_url_api/pkg/utils"
)

// cli holds what the persistent pre-run loads for every subcommand.
type cli struct {
	configFile string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "campaign-url",
		Short: "Turn campaign descriptions into UTM-tagged URLs",
		Long: `campaign-url converts a free-text marketing campaign description into
structured campaign fields with one language-model call, builds the UTM-tagged
URL and checks that the destination answers.

Run without arguments to start the HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configFile)
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				cfg.LogLevel = c.logLevel
			}
			logger, err := logging.New(cfg.LogLevel, cfg.IsLocal())
			if err != nil {
				return err
			}
			c.cfg, c.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runServe,
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (yaml, json or toml); defaults to $CAMPAIGN_CONFIG")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  c.runServe,
		},
		c.generateCmd(),
		c.buildCmd(),
		c.validateCmd(),
		c.cleanCmd(),
		c.historyCmd(),
	)
	return root
}

func (c *cli) runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, c.cfg, c.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	return app.Start(ctx, ":"+c.cfg.Port)
}

type outputFlags struct {
	validate bool
	shorten  bool
	clean    bool
	qrFile   string
	asJSON   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.validate, "validate", false, "probe the built URL")
	cmd.Flags().BoolVar(&o.shorten, "shorten", false, "also store a short link")
	cmd.Flags().BoolVar(&o.clean, "clean", false, "strip tracking parameters (gclid, fbclid, utm_*, ...) from the destination")
	cmd.Flags().StringVar(&o.qrFile, "qr", "", "write a PNG QR code to this file")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "print the result as JSON")
}

func (c *cli) assembleOptions(o outputFlags, record bool) utils.AssembleOptions {
	opts := utils.AssembleOptions{
		Validate:          o.validate,
		ValidationTimeout: c.cfg.ValidationTimeout,
		Shorten:           o.shorten,
		Record:            record,
		CleanDestination:  o.clean,
	}
	if o.qrFile != "" {
		opts.QRSize = c.cfg.QRSize
	}
	return opts
}

func (c *cli) generateCmd() *cobra.Command {
	var (
		model       string
		temperature float64
		apiKey      string
		noValidate  bool
		out         outputFlags
	)
	cmd := &cobra.Command{
		Use:   "generate [description]",
		Short: "Generate a campaign URL from a description",
		Long: `Extracts campaign fields from the description with the configured language
model, builds the UTM-tagged URL, validates it and records it in the history log.

The description is read from the arguments, or from stdin when none are given.

Example:
  campaign-url generate "Facebook paid ads for our summer sale, carousel v2, landing page shop.example.com/summer"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			if strings.TrimSpace(description) == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read description: %w", err)
				}
				description = string(raw)
			}
			if !cmd.Flags().Changed("temperature") {
				temperature = c.cfg.LLMTemperature
			}
			out.validate = !noValidate

			return c.withAssembler(cmd.Context(), func(ctx context.Context, assembler *utils.CampaignAssembler) error {
				draft, err := assembler.Generate(ctx, utils.GenerateRequest{
					Description: description,
					Model:       model,
					Temperature: temperature,
					APIKey:      apiKey,
				}, c.assembleOptions(out, true))
				var invalid *utils.InvalidURLError
				if errors.As(err, &invalid) && invalid.Fields != nil {
					if writeErr := writeExtractedFields(cmd.OutOrStdout(), *invalid.Fields, out.asJSON); writeErr != nil {
						return writeErr
					}
				}
				if err != nil {
					return err
				}
				return writeDraft(cmd.OutOrStdout(), draft, out)
			})
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "model name (defaults to LLM_MODEL)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "sampling temperature in [0, 2] (defaults to LLM_TEMPERATURE)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "provider API key (overrides the environment and config file)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip the reachability probe")
	cmd.Flags().BoolVar(&out.shorten, "shorten", false, "also store a short link")
	cmd.Flags().BoolVar(&out.clean, "clean", false, "strip tracking parameters from the extracted destination")
	cmd.Flags().StringVar(&out.qrFile, "qr", "", "write a PNG QR code to this file")
	cmd.Flags().BoolVar(&out.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *cli) buildCmd() *cobra.Command {
	var (
		fields  utils.CampaignFields
		options utils.UTMGeneratorOptions
		record  bool
		out     outputFlags
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a campaign URL from explicit fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields = fields.ApplyOptions(&options)
			return c.withAssembler(cmd.Context(), func(ctx context.Context, assembler *utils.CampaignAssembler) error {
				draft, err := assembler.Assemble(ctx, "", fields, c.assembleOptions(out, record))
				if err != nil {
					return err
				}
				return writeDraft(cmd.OutOrStdout(), draft, out)
			})
		},
	}
	cmd.Flags().StringVar(&fields.DestinationURL, "url", "", "destination URL (https:// is assumed)")
	cmd.Flags().StringVar(&fields.Source, "source", "", "utm_source")
	cmd.Flags().StringVar(&fields.Medium, "medium", "", "utm_medium")
	cmd.Flags().StringVar(&fields.CampaignName, "campaign", "", "utm_campaign")
	cmd.Flags().StringVar(&fields.CampaignID, "id", "", "utm_id")
	cmd.Flags().StringVar(&fields.Term, "term", "", "utm_term")
	cmd.Flags().StringVar(&fields.Content, "content", "", "utm_content")
	cmd.Flags().BoolVar(&options.ForceLowercase, "lowercase", false, "lowercase every UTM value")
	cmd.Flags().StringVar(&options.SpaceReplacement, "space-replacement", "", "replace spaces in UTM values, e.g. _")
	cmd.Flags().BoolVar(&record, "record", false, "append the result to the history log")
	out.register(cmd)
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	var (
		timeout time.Duration
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "validate <url>",
		Short: "Check that a URL answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("timeout") {
				timeout = c.cfg.ValidationTimeout
			}
			result := utils.NewURLValidator(c.logger).Validate(cmd.Context(), args[0], timeout)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValidation(result))
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", utils.DefaultValidationTimeout, "overall probe timeout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *cli) cleanCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "clean <url>",
		Short: "Strip tracking parameters from a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := utils.NormalizeURL(args[0])
			if err != nil {
				return err
			}
			result, err := utils.CleanURL(normalized)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, result)
			}
			fmt.Fprintln(w, result.CleanedURL)
			for _, removed := range result.RemovedParams {
				fmt.Fprintf(w, "removed: %s=%s (%s)\n", removed.Parameter, removed.Value, removed.Company)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *cli) historyCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent campaign URLs and time saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history := utils.NewHistoryLog(c.cfg.HistoryPath, c.logger)
			records, err := history.List(limit)
			if err != nil {
				return err
			}
			roi, err := history.ROI()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, map[string]interface{}{"records": records, "roi": roi})
			}
			for _, r := range records {
				fmt.Fprintf(w, "%s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.FinalURL)
			}
			fmt.Fprintf(w, "%d drafts, ~%d minutes and $%d saved\n", roi.Drafts, roi.MinutesSaved, roi.DollarsSaved)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum records to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *cli) withAssembler(ctx context.Context, fn func(context.Context, *utils.CampaignAssembler) error) error {
	assembler, links, err := newAssembler(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer links.Close()
	return fn(ctx, assembler)
}

func writeDraft(w io.Writer, draft *utils.CampaignDraft, out outputFlags) error {
	if out.qrFile != "" && len(draft.QRCode) > 0 {
		if err := os.WriteFile(out.qrFile, draft.QRCode, 0o644); err != nil {
			return fmt.Errorf("failed to write QR code: %w", err)
		}
	}
	if out.asJSON {
		return writeJSON(w, draft)
	}

	fmt.Fprintln(w, draft.URL)
	if draft.ShortURL != "" {
		fmt.Fprintf(w, "short: %s\n", draft.ShortURL)
	}
	if draft.Validation != nil {
		fmt.Fprintln(w, formatValidation(*draft.Validation))
	}
	for _, removed := range draft.Removed {
		fmt.Fprintf(w, "removed: %s=%s (%s)\n", removed.Parameter, removed.Value, removed.Company)
	}
	for _, warning := range draft.Warnings {
		if warning.Field != "" {
			fmt.Fprintf(w, "warning: %s: %s\n", warning.Field, warning.Message)
		} else {
			fmt.Fprintf(w, "warning: %s\n", warning.Message)
		}
	}
	if out.qrFile != "" && len(draft.QRCode) > 0 {
		fmt.Fprintf(w, "qr: %s\n", out.qrFile)
	}
	return nil
}

// writeExtractedFields shows what the model did extract when its destination was
// unusable, with the build command that finishes the job.
func writeExtractedFields(w io.Writer, fields utils.CampaignFields, asJSON bool) error {
	if asJSON {
		return writeJSON(w, map[string]interface{}{"fields": fields})
	}
	fmt.Fprintln(w, "extracted fields (destination missing or invalid):")
	args := []string{"campaign-url", "build", "--url", shellQuote(orPlaceholder(fields.DestinationURL, "<destination>"))}
	for _, f := range []struct{ label, flag, value string }{
		{"destination_url", "", fields.DestinationURL},
		{"source", "--source", fields.Source},
		{"medium", "--medium", fields.Medium},
		{"campaign_name", "--campaign", fields.CampaignName},
		{"campaign_id", "--id", fields.CampaignID},
		{"term", "--term", fields.Term},
		{"content", "--content", fields.Content},
	} {
		fmt.Fprintf(w, "  %-16s %s\n", f.label+":", f.value)
		if f.flag != "" && f.value != "" {
			args = append(args, f.flag, shellQuote(f.value))
		}
	}
	fmt.Fprintf(w, "fix the destination and run:\n  %s\n", strings.Join(args, " "))
	return nil
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func shellQuote(s string) string {
	if strings.ContainsAny(s, " \t'\"&?<>|;$") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

func formatValidation(result utils.ValidationResult) string {
	line := "validation: " + string(result.Status)
	if result.HTTPStatusCode != nil {
		line += fmt.Sprintf(" (HTTP %d)", *result.HTTPStatusCode)
	}
	if result.Message != "" {
		line += " - " + result.Message
	}
	return line
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
