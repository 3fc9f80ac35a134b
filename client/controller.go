package client

import (
	"sync"

	"github.com/tomatoplanet/leads-go/fieldschema"
)

// ClickPosition is where the trigger was clicked, used by the shell to
// animate the modal from that point.
type ClickPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ModalState is a read-only snapshot of the controller.
type ModalState struct {
	Open          bool
	ServiceType   string
	ClickPosition *ClickPosition
}

// FormController replaces the page's ambient modal state with an explicit
// container: which form is open, for which service type, opened from where.
// One controller is created with the page shell and lives as long as it
// does. All methods are safe for concurrent use.
type FormController struct {
	mu       sync.Mutex
	state    ModalState
	draft    *FormDraft
	newDraft func(kind fieldschema.Kind) *FormDraft
}

// NewFormController wires a controller to a transport. A fresh draft is
// created per open; closing discards it.
func NewFormController(transport Transport) *FormController {
	return &FormController{
		newDraft: func(kind fieldschema.Kind) *FormDraft {
			return NewFormDraft(kind, transport)
		},
	}
}

// OpenForm opens the contact form for the given service type. Reopening an
// already-open form just retargets the service type on the live draft.
func (fc *FormController) OpenForm(serviceType string, pos *ClickPosition) *FormDraft {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.state.Open && fc.draft != nil {
		fc.state.ServiceType = serviceType
		fc.state.ClickPosition = pos
		fc.draft.SetField("serviceType", serviceType)
		return fc.draft
	}

	draft := fc.newDraft(fieldschema.KindContact)
	draft.SetField("serviceType", serviceType)
	draft.OnClose = fc.CloseForm

	fc.state = ModalState{Open: true, ServiceType: serviceType, ClickPosition: pos}
	fc.draft = draft
	return draft
}

// OpenApplication opens one of the dedicated application modals.
func (fc *FormController) OpenApplication(kind fieldschema.Kind, pos *ClickPosition) *FormDraft {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	draft := fc.newDraft(kind)
	draft.OnClose = fc.CloseForm

	fc.state = ModalState{Open: true, ServiceType: string(kind), ClickPosition: pos}
	fc.draft = draft
	return draft
}

// CloseForm discards the draft. Fine to call when nothing is open.
func (fc *FormController) CloseForm() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.state = ModalState{}
	fc.draft = nil
}

func (fc *FormController) State() ModalState {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.state
}

// Draft returns the live draft, nil when no form is open.
func (fc *FormController) Draft() *FormDraft {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.draft
}
