// Package workspace reads the files a host keeps for the engine: the exercise
// catalog, the session plan, the workout history and recorded session logs.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/2beens/liftload/internal/catalog"
	"github.com/2beens/liftload/internal/history"
	"github.com/2beens/liftload/internal/session"
	"github.com/2beens/liftload/internal/telemetry/metrics"
	"github.com/2beens/liftload/internal/telemetry/tracing"
	"github.com/2beens/liftload/internal/workout"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

const (
	CatalogFile = "catalog.yaml"
	PlanFile    = "plan.yaml"
	HistoryFile = "history.yaml"
)

type Workspace struct {
	fs      afero.Fs
	dir     string
	metrics *metrics.Manager
}

func New(fs afero.Fs, dir string, metrics *metrics.Manager) *Workspace {
	return &Workspace{
		fs:      fs,
		dir:     dir,
		metrics: metrics,
	}
}

type catalogFile struct {
	Exercises []catalog.Entry `yaml:"exercises"`
}

// PlanDocument is the plan file: the exercises of the session and optional
// settings overriding the configured ones.
type PlanDocument struct {
	Settings  *workout.Settings `yaml:"settings,omitempty"`
	Exercises session.Plan      `yaml:"exercises"`
}

type historyFile struct {
	Sessions []workout.LoggedSession `yaml:"sessions"`
}

// readYAML decodes the named file. A missing optional file leaves out
// untouched and reports false.
func (w *Workspace) readYAML(ctx context.Context, name string, optional bool, out any) (_ bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workspace.read")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("file", name))

	start := time.Now()
	defer func() {
		if w.metrics != nil {
			w.metrics.HistWorkspaceLoadTime.WithLabelValues(name).Observe(time.Since(start).Seconds())
		}
	}()

	path := filepath.Join(w.dir, name)
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			log.Debugf("workspace: %s not found, skipping", path)
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// LoadCatalog reads catalog.yaml. Without the file the catalog is empty.
func (w *Workspace) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var f catalogFile
	if _, err := w.readYAML(ctx, CatalogFile, true, &f); err != nil {
		return nil, err
	}
	log.Debugf("workspace: %d catalog entries", len(f.Exercises))
	return catalog.New(f.Exercises), nil
}

func (w *Workspace) LoadPlan(ctx context.Context) (*PlanDocument, error) {
	var doc PlanDocument
	if _, err := w.readYAML(ctx, PlanFile, false, &doc); err != nil {
		return nil, err
	}
	if err := doc.Exercises.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", PlanFile, err)
	}
	if doc.Settings != nil && doc.Settings.WeightUnit != "" && !doc.Settings.WeightUnit.IsValid() {
		return nil, fmt.Errorf("invalid %s: unknown weight unit %q", PlanFile, doc.Settings.WeightUnit)
	}
	return &doc, nil
}

// LoadHistory reads history.yaml. Without the file the history is empty.
func (w *Workspace) LoadHistory(ctx context.Context) (*history.Log, error) {
	var f historyFile
	if _, err := w.readYAML(ctx, HistoryFile, true, &f); err != nil {
		return nil, err
	}
	log.Debugf("workspace: %d logged sessions", len(f.Sessions))
	return history.NewLog(f.Sessions...), nil
}

// MergeSettings lays the plan settings over base. Zero plan fields keep base;
// a different weight unit drops the base plates.
func (d *PlanDocument) MergeSettings(base workout.Settings) workout.Settings {
	if d.Settings == nil {
		return base
	}
	merged := base
	if d.Settings.WeightUnit != "" && d.Settings.WeightUnit != base.WeightUnit {
		merged.WeightUnit = d.Settings.WeightUnit
		merged.Plates = nil
	}
	if d.Settings.BarbellWeight > 0 {
		merged.BarbellWeight = d.Settings.BarbellWeight
	}
	if len(d.Settings.Plates) > 0 {
		merged.Plates = d.Settings.Plates
	}
	return merged
}
