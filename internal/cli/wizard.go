package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qanoonsoft/docwizard/pkg/generate"
	"github.com/qanoonsoft/docwizard/pkg/schema"
	"github.com/qanoonsoft/docwizard/pkg/validate"
	"github.com/qanoonsoft/docwizard/pkg/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard [type]",
	Short: "Walk the interactive document wizard",
	Long: `Steps through the four field steps of the chosen document type, runs the
full validation pass before review, and hands the validated payload to the
generation service configured via DOCWIZARD_GENERATOR_URL. Generated
artifacts are written to the output directory; DOCWIZARD_USER identifies
the owner.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := schema.Default()
		engine, err := buildEngine(cmd, registry)
		if err != nil {
			return err
		}
		outDir, _ := cmd.Flags().GetString("out")

		docType := schema.DocumentType("")
		if len(args) == 1 {
			docType = schema.DocumentType(args[0])
		}
		return runWizard(registry, engine, surveyDriver{}, docType, outDir)
	},
}

func init() {
	wizardCmd.Flags().StringP("out", "o", "artifacts", "Directory generated artifacts are written to")
	rootCmd.AddCommand(wizardCmd)
}

// runWizard drives one full wizard session over the supplied prompt driver.
func runWizard(registry *schema.Registry, engine *validate.Engine, driver PromptDriver, docType schema.DocumentType, outDir string) error {
	session := wizard.NewSession(registry, engine)

	if docType == "" {
		chosen, err := chooseType(registry, driver)
		if err != nil {
			return err
		}
		docType = chosen
	}
	if err := session.SelectType(docType); err != nil {
		return err
	}

	for session.Stage() == wizard.StageFieldStep {
		step := session.Step()
		fields := session.StepFields(step)
		if len(fields) > 0 {
			driver.Info(fmt.Sprintf("-- Step %d of %d --", step, wizard.StepCount))
		}
		for _, field := range fields {
			if err := promptField(session, driver, field); err != nil {
				return err
			}
		}

		err := session.Next()
		if err == nil {
			continue
		}
		if !errors.Is(err, wizard.ErrBlocked) {
			return err
		}
		if err := fixErrors(session, driver); err != nil {
			return err
		}
	}

	reportWarnings(driver, session.Result())
	showReview(driver, session)

	proceed, err := driver.Confirm("Generate the document?")
	if err != nil {
		return err
	}
	if !proceed {
		driver.Info("generation cancelled")
		return nil
	}

	return runGeneration(registry, session, driver, outDir)
}

func chooseType(registry *schema.Registry, driver PromptDriver) (schema.DocumentType, error) {
	types := registry.Types()
	labels := make([]string, 0, len(types))
	byLabel := make(map[string]schema.DocumentType, len(types))
	for _, docType := range types {
		label := registry.Label(docType)
		labels = append(labels, label)
		byLabel[label] = docType
	}
	chosen, err := driver.Select("Which document do you need?", labels)
	if err != nil {
		return "", err
	}
	docType, ok := byLabel[chosen]
	if !ok {
		return "", fmt.Errorf("cli: unknown selection %q", chosen)
	}
	return docType, nil
}

func promptField(session *wizard.Session, driver PromptDriver, field schema.FieldDefinition) error {
	label := field.Label
	if field.Required {
		label += " *"
	}

	var value string
	var err error
	if field.Kind == schema.KindSelect {
		options := field.Options
		if !field.Required {
			options = append([]string{"(skip)"}, options...)
		}
		value, err = driver.Select(label, options)
		if value == "(skip)" {
			return err
		}
	} else {
		value, err = driver.Input(label, "", field.Placeholder)
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" && !field.Required {
		return nil
	}
	session.Set(field.Name, value)
	return nil
}

// fixErrors re-prompts the fields behind the blocking errors of the last
// validation pass until the pass comes back clean.
func fixErrors(session *wizard.Session, driver PromptDriver) error {
	for {
		result := session.Result()
		if result.Valid() {
			return nil
		}

		driver.Info(fmt.Sprintf("%d issue(s) need fixing:", len(result.Errors)))
		for _, vErr := range result.Errors {
			driver.Info("  - " + vErr.Message)
		}

		for _, name := range errorFields(result) {
			field, ok := fieldByName(session, name)
			if !ok {
				continue
			}
			if err := promptField(session, driver, field); err != nil {
				return err
			}
		}

		err := session.Next()
		if err == nil {
			return nil
		}
		if !errors.Is(err, wizard.ErrBlocked) {
			return err
		}
	}
}

func errorFields(result validate.Result) []string {
	seen := make(map[string]struct{}, len(result.Errors))
	var out []string
	for _, vErr := range result.Errors {
		if vErr.Field == "" {
			continue
		}
		if _, dup := seen[vErr.Field]; dup {
			continue
		}
		seen[vErr.Field] = struct{}{}
		out = append(out, vErr.Field)
	}
	return out
}

func fieldByName(session *wizard.Session, name string) (schema.FieldDefinition, bool) {
	for step := 1; step <= wizard.StepCount; step++ {
		for _, field := range session.StepFields(step) {
			if field.Name == name {
				return field, true
			}
		}
	}
	return schema.FieldDefinition{}, false
}

func reportWarnings(driver PromptDriver, result validate.Result) {
	for _, warning := range result.Warnings {
		driver.Info("note: " + warning.Message)
	}
}

func showReview(driver PromptDriver, session *wizard.Session) {
	driver.Info("-- Review --")
	payload := session.Payload()
	names := make([]string, 0, len(payload))
	for name := range payload {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.TrimSpace(payload[name]) == "" {
			continue
		}
		driver.Info(fmt.Sprintf("  %s: %s", name, payload[name]))
	}
}

func runGeneration(registry *schema.Registry, session *wizard.Session, driver PromptDriver, outDir string) error {
	serviceURL := strings.TrimSpace(os.Getenv("DOCWIZARD_GENERATOR_URL"))
	if serviceURL == "" {
		return errors.New("cli: DOCWIZARD_GENERATOR_URL is not set")
	}

	orchestrator := generate.New(registry,
		generate.WithGenerator(generate.NewHTTPGenerator(serviceURL, nil)),
		generate.WithStore(fileStore{dir: outDir}),
		generate.WithAuth(envAuth{}),
		generate.WithLedger(printLedger{driver: driver}),
	)

	payload, epoch, err := session.BeginGeneration()
	if err != nil {
		return err
	}

	result, genErr := orchestrator.Generate(context.Background(), session.Type(), payload)
	session.FinishGeneration(epoch, genErr)

	switch {
	case genErr == nil:
		driver.Info(fmt.Sprintf("generated %q (%d credit(s) used)", result.Title, result.CreditsUsed))
		return nil
	case errors.Is(genErr, generate.ErrNotAuthenticated):
		return errors.New("cli: set DOCWIZARD_USER to identify the document owner")
	default:
		var saveErr *generate.SaveError
		if errors.As(genErr, &saveErr) {
			driver.Info("the document was generated but could not be saved; content follows:")
			driver.Info(saveErr.Result.Content)
		}
		return genErr
	}
}
