package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/lukasbauer/edgevox/edgetts"
	"github.com/lukasbauer/edgevox/internal/app"
)

func main() {
	cfg := app.LoadConfigFromEnv()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	// Initialize Sentry for error monitoring
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: getEnvironment(),
		})
		if err != nil {
			logger.Printf("sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		voice   string
		rate    string
		volume  string
		pitch   string
		outPath string
		noCache bool
		warmUp  bool
	)

	rootCmd := &cobra.Command{
		Use:           "edgevox",
		Short:         "Text-to-speech via Microsoft Edge's speech service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	speakCmd := &cobra.Command{
		Use:   "speak [text]",
		Short: "Synthesize text to an MP3 file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()
			client := a.Client()

			if warmUp {
				if err := client.WarmUp(ctx); err != nil {
					logger.Printf("warm-up failed: %v", err)
				}
			}

			text := strings.Join(args, " ")
			audio, err := client.Synthesize(ctx, text, voice, edgetts.Options{
				Rate:   rate,
				Volume: volume,
				Pitch:  pitch,
			}, !noCache)
			if err != nil {
				if cfg.SentryDSN != "" {
					sentry.CaptureException(err)
				}
				return err
			}

			if err := os.WriteFile(outPath, audio.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			logger.Printf("wrote %d bytes (%s) to %s", len(audio.Data), audio.MediaType, outPath)
			return nil
		},
	}
	speakCmd.Flags().StringVar(&voice, "voice", cfg.DefaultVoice, "voice identifier or language tag")
	speakCmd.Flags().StringVar(&rate, "rate", "", "speech rate delta, e.g. +10%")
	speakCmd.Flags().StringVar(&volume, "volume", "", "volume delta, e.g. -20%")
	speakCmd.Flags().StringVar(&pitch, "pitch", "", "pitch delta, e.g. -50Hz")
	speakCmd.Flags().StringVarP(&outPath, "out", "o", "out.mp3", "output file")
	speakCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	speakCmd.Flags().BoolVar(&warmUp, "warm-up", false, "prime connections before synthesizing")

	var language string
	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "List catalog voices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if language != "" {
				ids := edgetts.VoicesFor(language)
				if ids == nil {
					return fmt.Errorf("no voices for language %q", language)
				}
				for _, id := range ids {
					fmt.Println(id)
				}
				return nil
			}
			for _, lang := range edgetts.Languages() {
				for _, id := range edgetts.VoicesFor(lang) {
					fmt.Printf("%s\t%s\n", lang, id)
				}
			}
			return nil
		},
	}
	voicesCmd.Flags().StringVarP(&language, "language", "l", "", "restrict to one language tag")

	rootCmd.AddCommand(speakCmd, voicesCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Fatalf("edgevox: %v", err)
	}
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return "development"
}
