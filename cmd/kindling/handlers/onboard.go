// Package handlers implements the business logic behind the CLI commands.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/kindling-app/kindling/internal/profile"
	"github.com/kindling-app/kindling/internal/profile/wizard"
	"github.com/kindling-app/kindling/internal/ui/tui"
	"github.com/kindling-app/kindling/internal/upload"
)

// Factory function variables for onboard - can be replaced in tests.
var (
	fileExists       = wizard.FileExists
	confirmOverwrite = wizard.ConfirmOverwrite
	loadSeed         = profile.LoadSeed
	runTUI           = tui.Run
	runForm          = wizard.RunForm
	writeProfile     = wizard.WriteProfile
	newS3Uploader    = upload.NewS3

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// OnboardOptions carries the onboard command flags.
type OnboardOptions struct {
	OutputPath string
	SeedPath   string
	Form       bool
	Premium    bool
	S3         bool
}

// Onboard runs the profile wizard and writes the result to a file.
func Onboard(ctx context.Context, opts OnboardOptions) error {
	if !opts.Form && !isTerminal() {
		return fmt.Errorf("the onboarding wizard requires an interactive terminal (or use --form)")
	}

	if fileExists(opts.OutputPath) {
		confirmed, err := confirmOverwrite(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to prompt for confirmation: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted. Existing file was not modified.")
			return nil
		}
	}

	var seed *profile.Draft
	if opts.SeedPath != "" {
		draft, err := loadSeed(opts.SeedPath)
		if err != nil {
			return fmt.Errorf("failed to load seed profile: %w", err)
		}
		seed = &draft
	}

	uploader, err := buildUploader(opts)
	if err != nil {
		return err
	}

	var result *profile.Profile
	cfg := wizard.Config{
		Seed:    seed,
		Premium: opts.Premium,
		OnComplete: func(p profile.Profile) {
			result = &p
		},
	}

	if opts.Form {
		printWelcome()
		err = runForm(ctx, cfg, uploader)
	} else {
		err = runTUI(ctx, cfg, uploader)
	}
	if errors.Is(err, tui.ErrCanceled) {
		fmt.Println("Onboarding canceled. Nothing was saved.")
		return nil
	}
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("wizard exited without completing the profile")
	}

	if err := writeProfile(result, opts.OutputPath); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	printSuccess(opts.OutputPath, result)

	return nil
}

// buildUploader selects the photo upload backend.
func buildUploader(opts OnboardOptions) (upload.Uploader, error) {
	if !opts.S3 {
		return &upload.Placeholder{}, nil
	}

	s3, err := newS3Uploader(upload.S3Options{
		Endpoint:      os.Getenv("KINDLING_S3_ENDPOINT"),
		Region:        os.Getenv("KINDLING_S3_REGION"),
		Bucket:        os.Getenv("KINDLING_S3_BUCKET"),
		AccessKey:     os.Getenv("KINDLING_S3_ACCESS_KEY"),
		SecretKey:     os.Getenv("KINDLING_S3_SECRET_KEY"),
		PublicBaseURL: os.Getenv("KINDLING_S3_PUBLIC_URL"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 uploads: %w", err)
	}
	return s3, nil
}

// printWelcome prints the welcome message for form mode.
func printWelcome() {
	fmt.Println()
	fmt.Println("kindling - your profile, four quick steps")
	fmt.Println("=========================================")
	fmt.Println()
	fmt.Println("Name, photos, bio, interests. Nothing is saved until the")
	fmt.Println("last step is confirmed.")
	fmt.Println()
}

// printSuccess prints the profile summary and next steps.
func printSuccess(outputPath string, p *profile.Profile) {
	fmt.Println()
	fmt.Println("Profile saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Profile Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:       %s\n", p.Name)
	fmt.Printf("  Photos:     %d", len(p.Photos))
	if len(p.Photos) > 0 {
		fmt.Printf(" (main: %s)", p.Photos[0].URL)
	}
	fmt.Println()
	fmt.Printf("  Bio:        %d characters\n", len(p.Bio))
	fmt.Printf("  Interests:  %s\n", strings.Join(p.Interests, ", "))
	fmt.Printf("  Match with: %s\n", p.Preference)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Edit any step later by resuming from the file:")
	fmt.Printf("     kindling onboard --seed %s\n", outputPath)
	fmt.Println()
}
