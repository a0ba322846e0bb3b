// Package diagnostics implements the database probe served on GET /test.
// Run has no error return: every failure is folded into the Report.
package diagnostics

import (
	"context"
	"fmt"

	"github.com/artfolio/portfolio-api/pkg/metrics"
)

// MaxCollections caps the number of collection names in a Report.
const MaxCollections = 10

const maxErrLen = 50

// Outcome classifies a probe.
type Outcome int

const (
	// OutcomeUnconfigured: no database handle exists.
	OutcomeUnconfigured Outcome = iota
	// OutcomeConnected: the handle answered a collection listing.
	OutcomeConnected
	// OutcomeDegraded: a handle exists but listing collections failed.
	OutcomeDegraded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConnected:
		return "connected"
	case OutcomeDegraded:
		return "degraded"
	}
	return "unconfigured"
}

// Inspector is the read-only view of the database the probe needs.
// *database.DB satisfies it.
type Inspector interface {
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Env reports which connection values were present in the environment.
type Env struct {
	URLSet  bool
	NameSet bool
	// StartupErr is why no handle exists, if any.
	StartupErr error
}

// Report is the GET /test response body.
type Report struct {
	Outcome          Outcome  `json:"-"`
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Run probes db. A nil db yields an OutcomeUnconfigured report.
func Run(ctx context.Context, db Inspector, env Env) Report {
	r := Report{
		Outcome:          OutcomeUnconfigured,
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if db == nil {
		if env.StartupErr != nil {
			r.Database = "⚠️  Available but not initialized: " + truncate(env.StartupErr.Error())
		} else {
			r.Database = "⚠️  Available but not initialized"
		}
	} else {
		r.ConnectionStatus = "Connected"
		r.Database = "✅ Available"
		names, err := listCollections(ctx, db)
		if err != nil {
			r.Outcome = OutcomeDegraded
			r.Database = "⚠️  Connected but Error: " + truncate(err.Error())
		} else {
			r.Outcome = OutcomeConnected
			r.Database = "✅ Connected & Working"
			if len(names) > MaxCollections {
				names = names[:MaxCollections]
			}
			r.Collections = names
		}
	}

	r.DatabaseURL = setOrNot(env.URLSet)
	r.DatabaseName = setOrNot(env.NameSet)

	metrics.DiagnosticProbes.WithLabelValues(r.Outcome.String()).Inc()
	return r
}

// listCollections converts a panic inside the driver into an error.
func listCollections(ctx context.Context, db Inspector) (names []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	names, err = db.ListCollectionNames(ctx)
	if names == nil {
		names = []string{}
	}
	return names, err
}

func setOrNot(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxErrLen {
		return s
	}
	return string(r[:maxErrLen])
}
