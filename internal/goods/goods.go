package goods

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPurpose = errors.New("invalid transport purpose")
	ErrInvalidStatus  = errors.New("invalid status")
)

// Status represents the discharge state of a goods line.
type Status string

const (
	StatusReady   Status = "Ready"
	StatusPending Status = "Pending"
	StatusArrived Status = "Arrived"
)

// AllStatuses lists every status in declaration order.
var AllStatuses = []Status{StatusReady, StatusPending, StatusArrived}

func (s Status) Valid() bool {
	switch s {
	case StatusReady, StatusPending, StatusArrived:
		return true
	}

	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}

	return st, nil
}

// Purpose is the transport purpose classification of a goods line.
type Purpose string

const (
	PurposeImport        Purpose = "import"
	PurposeTransit       Purpose = "transit"
	PurposeTransshipment Purpose = "transshipment"
	PurposeROB           Purpose = "rob"
)

func (p Purpose) Valid() bool {
	switch p {
	case PurposeImport, PurposeTransit, PurposeTransshipment, PurposeROB:
		return true
	}

	return false
}

// Label returns the operator-facing label, or the raw value if p is not a known purpose.
func (p Purpose) Label() string {
	for _, o := range PurposeOptions {
		if o.Purpose == p {
			return o.Label
		}
	}

	return string(p)
}

func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPurpose, s)
	}

	return p, nil
}

// PurposeOption pairs a purpose with its label and display color.
type PurposeOption struct {
	Purpose Purpose
	Label   string
	Color   string
}

// PurposeOptions is the fixed, ordered table of transport purposes.
var PurposeOptions = []PurposeOption{
	{Purpose: PurposeImport, Label: "Nhập khẩu", Color: "blue"},
	{Purpose: PurposeTransit, Label: "Quá cảnh", Color: "geekblue"},
	{Purpose: PurposeTransshipment, Label: "Trung chuyển", Color: "purple"},
	{Purpose: PurposeROB, Label: "ROB", Color: "orange"},
}

// StatusColors maps each status to its badge kind.
var StatusColors = map[Status]string{
	StatusArrived: "success",
	StatusPending: "default",
	StatusReady:   "processing",
}

// Record is one cargo line expected to be discharged from the vessel.
type Record struct {
	ID            string
	ManifestNo    string
	HouseBill     string
	ContainerNo   string
	SealNo        string
	Commodity     string
	Quantity      decimal.Decimal
	Unit          string
	Weight        decimal.Decimal // kg
	DischargePort string
	Status        Status
	Destination   string
	Purpose       Purpose
}

// Clone returns a copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}
