package api

import (
	"context"
	"fmt"

	"github.com/me/clinidash/pkg/model"
)

// ListPatients fetches a page of patient records.
func (c *Client) ListPatients(ctx context.Context, opts model.ListOptions) ([]model.Patient, error) {
	opts.Clamp()
	var patients []model.Patient
	path := fmt.Sprintf("/patients/?skip=%d&limit=%d", opts.Skip, opts.Limit)
	if err := c.do(ctx, "patients.list", "GET", path, nil, &patients, "failed to load patients"); err != nil {
		return nil, err
	}
	return patients, nil
}

// GetPatient fetches a single patient by id.
func (c *Client) GetPatient(ctx context.Context, id int) (model.Patient, error) {
	var p model.Patient
	path := fmt.Sprintf("/patients/%d", id)
	if err := c.do(ctx, "patients.get", "GET", path, nil, &p, "failed to load patient"); err != nil {
		return model.Patient{}, err
	}
	return p, nil
}

// CreatePatient creates a patient record. The derived global level is
// recomputed before submission rather than trusting the caller's value.
func (c *Client) CreatePatient(ctx context.Context, in model.PatientInput) (model.Patient, error) {
	in.Recompute()
	var p model.Patient
	if err := c.do(ctx, "patients.create", "POST", "/patients/", in, &p, "failed to create patient"); err != nil {
		return model.Patient{}, err
	}
	return p, nil
}

// UpdatePatient replaces a patient record. The derived global level is
// recomputed before submission.
func (c *Client) UpdatePatient(ctx context.Context, id int, in model.PatientInput) (model.Patient, error) {
	in.Recompute()
	var p model.Patient
	path := fmt.Sprintf("/patients/%d", id)
	if err := c.do(ctx, "patients.update", "PUT", path, in, &p, "failed to update patient"); err != nil {
		return model.Patient{}, err
	}
	return p, nil
}

// DeletePatient removes a patient record.
func (c *Client) DeletePatient(ctx context.Context, id int) error {
	path := fmt.Sprintf("/patients/%d", id)
	return c.do(ctx, "patients.delete", "DELETE", path, nil, nil, "failed to delete patient")
}

// PredictPatient triggers the remote prediction for a patient. The profile
// is computed entirely server-side; this client never derives it locally.
func (c *Client) PredictPatient(ctx context.Context, id int) (PredictionResult, error) {
	var res PredictionResult
	path := fmt.Sprintf("/patients/%d/predict", id)
	if err := c.do(ctx, "patients.predict", "POST", path, nil, &res, "prediction failed"); err != nil {
		return PredictionResult{}, err
	}
	return res, nil
}
