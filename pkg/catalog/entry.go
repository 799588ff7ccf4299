// Package catalog loads, mutates, and persists the local course catalog.
// The on-disk container is format agnostic: JSON or YAML, with the entry
// array under either of two historical key names and several field-name
// aliases per record. Ingestion maps everything onto one canonical Entry.
package catalog

import (
	"time"

	"github.com/fairwaylabs/coursesync/pkg/pars"
)

// Entry is one local golf course record.
type Entry struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	NameKana   string   `json:"nameKana,omitempty" yaml:"nameKana,omitempty"`
	Prefecture string   `json:"prefecture,omitempty" yaml:"prefecture,omitempty"`
	AreaCodes  []string `json:"areaCodes,omitempty" yaml:"areaCodes,omitempty"`
	HoleCount  *int     `json:"holeCount,omitempty" yaml:"holeCount,omitempty"`

	// Derived par fields, written together by the reconciliation engine.
	Pars            []int  `json:"pars,omitempty" yaml:"pars,omitempty"`
	ParOut          *int   `json:"parOut,omitempty" yaml:"parOut,omitempty"`
	ParIn           *int   `json:"parIn,omitempty" yaml:"parIn,omitempty"`
	ParTotal        *int   `json:"parTotal,omitempty" yaml:"parTotal,omitempty"`
	ParSource       string `json:"parSource,omitempty" yaml:"parSource,omitempty"`
	ParTeeName      string `json:"parTeeName,omitempty" yaml:"parTeeName,omitempty"`
	GolfCourseAPIID *int   `json:"golfcourseapiId,omitempty" yaml:"golfcourseapiId,omitempty"`
}

// ApplyPars commits a reconciled 18-hole par array and all derived fields in
// one step, so an entry is either fully updated or untouched.
func (e *Entry) ApplyPars(p []int, source, teeName string, remoteID int) {
	out := pars.Out(p)
	in := pars.In(p)
	total := pars.Total(p)
	holes := len(p)

	e.Pars = p
	e.ParOut = &out
	e.ParIn = &in
	e.ParTotal = &total
	e.ParSource = source
	e.ParTeeName = teeName
	e.GolfCourseAPIID = &remoteID
	e.HoleCount = &holes
}

// RunMeta is the run-metadata block written into the output container.
type RunMeta struct {
	UpdatedAt     time.Time `json:"updatedAt" yaml:"updatedAt"`
	RunID         string    `json:"runId" yaml:"runId"`
	Key           string    `json:"key" yaml:"key"` // masked API key
	TeeName       string    `json:"teeName" yaml:"teeName"`
	AllowFallback bool      `json:"allowFallback" yaml:"allowFallback"`
	MaxCourses    int       `json:"maxCourses" yaml:"maxCourses"`
	AreaFilter    []string  `json:"areaFilter,omitempty" yaml:"areaFilter,omitempty"`
	Counts        RunCounts `json:"counts" yaml:"counts"`
	Errors        any       `json:"errors" yaml:"errors"`
}

// RunCounts aggregates per-entry outcomes for a run.
type RunCounts struct {
	Attempted int `json:"attempted" yaml:"attempted"`
	Updated   int `json:"updated" yaml:"updated"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`
}
