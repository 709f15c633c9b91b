package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/clinidash/pkg/model"
)

func newPatientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage patient records",
	}
	cmd.AddCommand(
		newPatientsListCmd(),
		newPatientsGetCmd(),
		newPatientsCreateCmd(),
		newPatientsUpdateCmd(),
		newPatientsDeleteCmd(),
		newPatientsPredictCmd(),
	)
	return cmd
}

func newPatientsListCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patient records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			opts := model.ListOptions{Skip: skip, Limit: limit}
			opts.Clamp()
			patients, err := client.ListPatients(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list patients: %w", err)
			}

			if len(patients) == 0 {
				fmt.Println("No patients found.")
				return nil
			}

			fmt.Printf("%-6s  %-30s  %-4s  %-10s  %-6s  %s\n", "ID", "NAME", "AGE", "GENDER", "LEVEL", "PROFILE")
			fmt.Printf("%-6s  %-30s  %-4s  %-10s  %-6s  %s\n", "--", "----", "---", "------", "-----", "-------")
			for _, p := range patients {
				profile := "-"
				if p.HasPrediction() {
					profile = strconv.Itoa(*p.PredictionProfile)
				}
				fmt.Printf("%-6d  %-30s  %-4d  %-10s  %-6d  %s\n", p.ID, p.FullName, p.Age, p.Gender, p.GlobalLevel, profile)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Records to skip")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum records to return")
	return cmd
}

func newPatientsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a patient record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			patient, err := client.GetPatient(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get patient: %w", err)
			}
			return printJSON(patient)
		},
	}
}

func newPatientsCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a patient record from JSON",
		Long:  "Read a patient record from --file (or stdin with '-') and create it. The global level is recomputed from the six sub-scores before sending.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			in, err := readPatientInput(file)
			if err != nil {
				return err
			}

			created, err := client.CreatePatient(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create patient: %w", err)
			}
			fmt.Printf("Created patient %d (%s), global level %d\n", created.ID, created.FullName, created.GlobalLevel)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "JSON file with the patient record ('-' for stdin)")
	return cmd
}

func newPatientsUpdateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a patient record from JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			in, err := readPatientInput(file)
			if err != nil {
				return err
			}

			updated, err := client.UpdatePatient(cmd.Context(), id, in)
			if err != nil {
				return fmt.Errorf("update patient: %w", err)
			}
			fmt.Printf("Updated patient %d (%s), global level %d\n", updated.ID, updated.FullName, updated.GlobalLevel)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "JSON file with the patient record ('-' for stdin)")
	return cmd
}

func newPatientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			if err := client.DeletePatient(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete patient: %w", err)
			}
			fmt.Printf("Deleted patient %d\n", id)
			return nil
		},
	}
}

func newPatientsPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <id>",
		Short: "Run the barrier-profile prediction for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			result, err := client.PredictPatient(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("predict: %w", err)
			}
			fmt.Printf("Profile:     %d\n", result.Profile)
			fmt.Printf("Description: %s\n", result.Description)
			return nil
		},
	}
}

// readPatientInput loads a PatientInput from a file or stdin and recomputes
// the derived global level.
func readPatientInput(file string) (model.PatientInput, error) {
	var in model.PatientInput

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return in, fmt.Errorf("read patient record: %w", err)
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse patient record: %w", err)
	}
	if in.FullName == "" {
		return in, fmt.Errorf("nombre_apellidos is required")
	}

	in.Recompute()
	return in, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
