package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skynet2/beancount-telegram-importer/pkg/attachment"
	"github.com/skynet2/beancount-telegram-importer/pkg/config"
	"github.com/skynet2/beancount-telegram-importer/pkg/database"
	"github.com/skynet2/beancount-telegram-importer/pkg/export"
	"github.com/skynet2/beancount-telegram-importer/pkg/ledger"
	"github.com/skynet2/beancount-telegram-importer/pkg/parser"
	"github.com/skynet2/beancount-telegram-importer/pkg/printer"
	"github.com/skynet2/beancount-telegram-importer/pkg/processor"
	"github.com/skynet2/beancount-telegram-importer/pkg/repo"
	"github.com/skynet2/beancount-telegram-importer/pkg/telegram"
)

const (
	httpTimeout    = 30 * time.Second
	defaultEntries = 50
)

func newSyncCmd(configPath *string) *cobra.Command {
	var opts processor.Options

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Process every message newer than the last one already written",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd.Context(), *configPath, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "delete existing ledger files and start over")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "perform a dry run without altering any file")
	cmd.Flags().BoolVar(&opts.NoDownload, "no-download", false, "do not download attachments")

	return cmd
}

func newCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check access to the chat and print its latest message",
		Long: "Check access to the chat and print its latest message.\n\n" +
			"With the bot API only messages not yet acknowledged by a previous sync are visible, " +
			"so an empty result after a sync does not mean the chat has no history.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), *configPath)
		},
	}
}

func newJournalCmd(configPath *string) *cobra.Command {
	var (
		skipped bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print recorded message outcomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJournal(cmd.Context(), *configPath, skipped, limit)
		},
	}

	cmd.Flags().BoolVar(&skipped, "skipped", false, "only messages whose latest outcome is a skip")
	cmd.Flags().IntVar(&limit, "limit", defaultEntries, "number of entries to print")

	return cmd
}

func loadConfig(ctx context.Context, path string) (context.Context, *config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, nil, err
	}

	if cfg.LogLevel != "" {
		level, levelErr := zerolog.ParseLevel(cfg.LogLevel)
		if levelErr != nil {
			return ctx, nil, errors.Wrapf(levelErr, "invalid log level %s", cfg.LogLevel)
		}

		ctx = zerolog.Ctx(ctx).Level(level).WithContext(ctx)
	}

	return ctx, cfg, nil
}

func newTransport(settings *config.Settings, readOnly bool) (processor.Transport, processor.NotificationSvc) {
	if settings.ExportDir != "" {
		return export.NewExport(settings.ExportDir), nil
	}

	cl := telegram.NewClient(settings.BotToken, req.C().SetTimeout(httpTimeout)).WithReadOnly(readOnly)

	return cl, cl
}

func runSync(ctx context.Context, configPath string, opts processor.Options) error {
	ctx, cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	settings, err := cfg.Validate(opts.NoDownload)
	if err != nil {
		return err
	}

	if _, err = cfg.ValidateSource(); err != nil {
		return err
	}

	transport, notifier := newTransport(settings, opts.DryRun)
	router := ledger.NewRouter(settings.Accounts, settings.RootFolder)
	pr := printer.NewPrinter()

	opts.NotifySummary = settings.NotifySummary
	opts.Reaction = settings.Reaction

	procCfg := &processor.Config{
		Transport:       transport,
		Parser:          parser.NewParser(settings.Accounts),
		Classifier:      attachment.NewClassifier(settings.Accounts, settings.Rules, settings.RootFolder, settings.TempFolder),
		Router:          router,
		Watermark:       ledger.NewWatermark(router),
		NotificationSvc: notifier,
		Printer:         pr,
		Options:         opts,
	}

	if !opts.DryRun {
		journal, journalErr := repo.NewJournal(settings.JournalPath)
		if journalErr != nil {
			return journalErr
		}
		defer func() {
			_ = journal.Close()
		}()

		procCfg.Journal = journal
	}

	result, err := processor.NewProcessor(procCfg).Run(ctx, settings.ChatID)
	if result != nil {
		fmt.Println(pr.Summary(ctx, result))
	}

	return err
}

func runCheck(ctx context.Context, configPath string) error {
	ctx, cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	settings, err := cfg.ValidateSource()
	if err != nil {
		return err
	}

	transport, _ := newTransport(settings, true)

	result, err := processor.NewProcessor(&processor.Config{Transport: transport}).Check(ctx, settings.ChatID)
	if err != nil {
		return err
	}

	fmt.Println(printer.NewPrinter().Check(ctx, result))

	return nil
}

func runJournal(ctx context.Context, configPath string, skipped bool, limit int) error {
	ctx, cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	settings, err := cfg.Validate(true)
	if err != nil {
		return err
	}

	journal, err := repo.NewJournal(settings.JournalPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = journal.Close()
	}()

	var entries []*database.JournalEntry
	if skipped {
		entries, err = journal.Skipped(ctx)
	} else {
		entries, err = journal.Entries(ctx, limit)
	}
	if err != nil {
		return err
	}

	fmt.Println(printer.NewPrinter().Journal(ctx, entries))

	return nil
}
