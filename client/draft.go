// Package client is the form side of the submission pipeline: an in-memory
// draft of one application, validated against the same embedded field schema
// the server enforces, submitted through a pluggable Transport.
//
// On top of the shared schema the draft applies the conditional rules the
// form UI has always had: the declared contact channel makes email or
// phone+country code required, and picking "other" for industry/platform
// makes the matching free-text field required. The server deliberately does
// not enforce those two groups (it tolerates laxer input than the UI
// offers), so a draft is strictly harder to satisfy than the wire schema.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomatoplanet/leads-go/fieldschema"
)

// State is the draft lifecycle. Validation errors leave the draft in
// StateIdle with Errors() populated.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

var (
	// ErrValidationFailed means Errors() has the field details and the
	// transport was never invoked.
	ErrValidationFailed = errors.New("validation failed")
	// ErrSubmitInFlight rejects a duplicate Submit while one is pending.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// CloseDelay is how long the success state lingers before the draft resets
// and the OnClose hook fires, matching the form's 2 second banner.
const CloseDelay = 2 * time.Second

// Fields every application kind shares; they survive a kind switch.
var commonFields = map[string]bool{
	"name":             true,
	"email":            true,
	"company":          true,
	"phone":            true,
	"phoneCountryCode": true,
	"phoneNumber":      true,
	"message":          true,
	"contactType":      true,
}

func defaults(kind fieldschema.Kind) map[string]string {
	fields := map[string]string{
		"contactType":      "email",
		"phoneCountryCode": "+1",
	}
	switch kind {
	case fieldschema.KindCreator:
		fields["platform"] = "tiktok"
	case fieldschema.KindContact:
		fields["serviceType"] = "brand"
		fields["platform"] = "tiktok"
	}
	return fields
}

// FormDraft holds one in-progress application. It is confined to a single
// interactive session; the mutex only guards against the auto-close timer.
type FormDraft struct {
	mu     sync.Mutex
	kind   fieldschema.Kind
	fields map[string]string
	errors map[string]string
	state  State
	result Result
	timer  *time.Timer

	transport Transport

	// OnSuccess fires after a successful submission settles, before the
	// auto-close delay; the page shell uses it to revalidate its data.
	OnSuccess func(Result)
	// OnClose fires when the success banner times out and the draft has
	// been reset.
	OnClose func()
}

func NewFormDraft(kind fieldschema.Kind, transport Transport) *FormDraft {
	return &FormDraft{
		kind:      kind,
		fields:    defaults(kind),
		errors:    map[string]string{},
		state:     StateIdle,
		transport: transport,
	}
}

func (d *FormDraft) Kind() fieldschema.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.kind
}

func (d *FormDraft) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Result returns the last settled submission outcome.
func (d *FormDraft) Result() Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// Errors returns the field errors from the last Validate or Submit.
func (d *FormDraft) Errors() map[string]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]string, len(d.errors))
	for k, v := range d.errors {
		out[k] = v
	}
	return out
}

// Field returns the current value of one field.
func (d *FormDraft) Field(name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fields[name]
}

// SetField records a value. Moving a selector off "other" clears the
// matching free-text field, since its value is meaningless there.
func (d *FormDraft) SetField(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[name] = value
	switch name {
	case "platform":
		if value != "other" {
			delete(d.fields, "otherPlatform")
		}
	case "industry":
		if value != "other" {
			delete(d.fields, "otherIndustry")
		}
	}
}

// SetApplicationKind switches the draft between application kinds. Fields
// both kinds share (name, email, phone, contact channel) carry over;
// kind-specific answers reset to that kind's defaults.
func (d *FormDraft) SetApplicationKind(kind fieldschema.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if kind == d.kind {
		return
	}

	fields := defaults(kind)
	for name, value := range d.fields {
		if commonFields[name] && value != "" {
			fields[name] = value
		}
	}
	d.kind = kind
	d.fields = fields
	d.errors = map[string]string{}
}

// Validate checks the draft without mutating it: the shared schema first,
// then the form-only conditional rules.
func (d *FormDraft) Validate() (map[string]string, error) {
	d.mu.Lock()
	kind := d.kind
	payload := make(map[string]interface{}, len(d.fields))
	fields := make(map[string]string, len(d.fields))
	for name, value := range d.fields {
		payload[name] = value
		fields[name] = value
	}
	d.mu.Unlock()

	errs, err := fieldschema.Validate(kind, payload)
	if err != nil {
		return nil, fmt.Errorf("validate draft: %w", err)
	}

	applyConditionalRules(kind, fields, errs)
	return errs, nil
}

func applyConditionalRules(kind fieldschema.Kind, fields map[string]string, errs map[string]string) {
	setIfMissing := func(field, msg string) {
		if fields[field] == "" {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}

	if fields["platform"] == "other" {
		setIfMissing("otherPlatform", "Please specify the platform")
	}
	if fields["industry"] == "other" {
		setIfMissing("otherIndustry", "Please specify the industry")
	}

	if kind == fieldschema.KindContact {
		return
	}
	switch fields["contactType"] {
	case "email":
		setIfMissing("email", "Valid email is required")
	case "phone":
		setIfMissing("phoneNumber", "Phone number is required")
		setIfMissing("phoneCountryCode", "Country code is required")
	}
}

// Submit runs the full pipeline for this draft: validate, transition to
// submitting (blocking duplicate submits), invoke the transport, then settle
// into success or error. On success the draft resets and closes after
// CloseDelay; on any failure every entered value is preserved for
// correction and resubmission.
func (d *FormDraft) Submit(ctx context.Context) (Result, error) {
	d.mu.Lock()
	if d.state == StateSubmitting {
		d.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	d.mu.Unlock()

	errs, err := d.Validate()
	if err != nil {
		return Result{}, err
	}

	d.mu.Lock()
	if len(errs) > 0 {
		d.errors = errs
		d.state = StateIdle
		d.mu.Unlock()
		return Result{}, ErrValidationFailed
	}
	if d.state == StateSubmitting {
		d.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	d.errors = map[string]string{}
	d.state = StateSubmitting
	kind := d.kind
	payload := make(map[string]string, len(d.fields))
	for name, value := range d.fields {
		if value != "" {
			payload[name] = value
		}
	}
	d.mu.Unlock()

	result, err := d.transport.Submit(ctx, kind, payload)
	if err != nil {
		result = Result{Error: "There was an error submitting your application. Please try again."}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.result = result
	if result.Error != "" {
		d.state = StateError
		return result, nil
	}

	d.state = StateSuccess
	if d.OnSuccess != nil {
		d.OnSuccess(result)
	}
	d.timer = time.AfterFunc(CloseDelay, d.close)
	return result, nil
}

// close resets the draft after the success banner has been shown.
func (d *FormDraft) close() {
	d.mu.Lock()
	d.fields = defaults(d.kind)
	d.errors = map[string]string{}
	d.state = StateIdle
	onClose := d.OnClose
	d.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}
