package commands

import (
	"github.com/spf13/cobra"

	"github.com/kindling-app/kindling/cmd/kindling/handlers"
)

// Onboard returns the command for the interactive profile wizard.
//
// The wizard walks through four steps: name, photos, bio, and interests.
// Each step validates its input before the next one unlocks, and the
// finished profile is written to a YAML file.
//
// Flags:
//
//	--output, -o: Path to the output file (default "profile.yaml")
//	--seed, -s: Resume from a previously written profile file
//	--form: Use a single scrolling form instead of the step wizard
//	--premium: Mark the profile as a premium member
//	--s3: Upload photos to S3-compatible storage (configured via KINDLING_S3_* env vars)
func Onboard() *cobra.Command {
	var opts handlers.OnboardOptions

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your profile with the step-by-step wizard",
		Long: `Create your Kindling profile step by step.

The wizard asks for:

  - Your name (2-20 characters)
  - Photos (2-6, the first becomes your main photo)
  - A short bio (20-500 characters)
  - Interests (pick 3-10) and who you'd like to match with

Progress is shown at the top, and each step validates before you can
continue. You can always go back to an earlier step; nothing is saved
until the final step is confirmed.

Photos are uploaded as you add them. By default a placeholder CDN URL
is assigned; pass --s3 to upload to S3-compatible storage configured
through KINDLING_S3_ENDPOINT, KINDLING_S3_REGION, KINDLING_S3_BUCKET,
KINDLING_S3_ACCESS_KEY and KINDLING_S3_SECRET_KEY.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Onboard(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "profile.yaml", "Output file path")
	cmd.Flags().StringVarP(&opts.SeedPath, "seed", "s", "", "Profile YAML to resume from")
	cmd.Flags().BoolVar(&opts.Form, "form", false, "Use a single scrolling form instead of the step wizard")
	cmd.Flags().BoolVar(&opts.Premium, "premium", false, "Mark the profile as a premium member")
	cmd.Flags().BoolVar(&opts.S3, "s3", false, "Upload photos to S3-compatible storage")

	return cmd
}
