package datasets

import (
	"context"
	"errors"
	"sync"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

// Dispatcher owns the held working set of one dataset and applies
// mutations optimistically: the local list changes first, the store call
// follows, and a store failure restores the pre-mutation snapshot so the
// held list never drifts from what the store accepted.
type Dispatcher struct {
	mu           sync.Mutex
	source       contracts.DataSource
	resourceType string
	held         []*fhir_dto.Resource
	issued       uint64
	applied      uint64
	Log          *zap.Logger
}

func NewDispatcher(source contracts.DataSource, resourceType string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		source:       source,
		resourceType: resourceType,
		Log:          logger,
	}
}

// SetItems replaces the held working set after a search lands.
func (d *Dispatcher) SetItems(resources []*fhir_dto.Resource) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.held = resources
}

// NextSequence issues the number for a search about to go out. Results
// come back through InstallIfCurrent carrying this number.
func (d *Dispatcher) NextSequence() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.issued++
	return d.issued
}

// InstallIfCurrent installs a search result only when it belongs to the
// most recently issued search and nothing newer has been applied yet. The
// check and the install share one critical section, so a slow search
// resuming after a newer one landed can never overwrite the newer working
// set.
func (d *Dispatcher) InstallIfCurrent(sequence uint64, resources []*fhir_dto.Resource) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sequence != d.issued || sequence <= d.applied {
		return false
	}
	d.applied = sequence
	d.held = resources
	return true
}

func (d *Dispatcher) Items() []*fhir_dto.Resource {
	d.mu.Lock()
	defer d.mu.Unlock()
	items := make([]*fhir_dto.Resource, len(d.held))
	copy(items, d.held)
	return items
}

func (d *Dispatcher) Find(id string) *fhir_dto.Resource {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.findLocked(id)
}

func (d *Dispatcher) findLocked(id string) *fhir_dto.Resource {
	for _, resource := range d.held {
		if resource.ID() == id {
			return resource
		}
	}
	return nil
}

// snapshotLocked deep-copies the held list. Restores after a failed
// dispatch must be byte-for-byte what was there before.
func (d *Dispatcher) snapshotLocked() []*fhir_dto.Resource {
	snapshot := make([]*fhir_dto.Resource, len(d.held))
	for i, resource := range d.held {
		snapshot[i] = resource.Clone()
	}
	return snapshot
}

func (d *Dispatcher) CreateAndAppend(ctx context.Context, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	stored, err := d.source.Create(ctx, d.resourceType, resource)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.held = append(d.held, stored)
	d.mu.Unlock()
	return stored, nil
}

func (d *Dispatcher) UpdateAndReplace(ctx context.Context, id string, resource *fhir_dto.Resource) (*fhir_dto.Resource, error) {
	d.mu.Lock()
	snapshot := d.snapshotLocked()
	replaced := false
	for i, held := range d.held {
		if held.ID() == id {
			d.held[i] = resource
			replaced = true
			break
		}
	}
	d.mu.Unlock()

	stored, err := d.source.Update(ctx, d.resourceType, id, resource)
	if err != nil {
		if replaced {
			d.restore(snapshot)
		}
		return nil, err
	}

	d.mu.Lock()
	for i, held := range d.held {
		if held.ID() == id {
			d.held[i] = stored
			break
		}
	}
	d.mu.Unlock()
	return stored, nil
}

// DeleteAndRemove removes the item locally before dispatching. A not-found
// from the store is soft: the item is already gone remotely, so the local
// removal stands and no error surfaces.
func (d *Dispatcher) DeleteAndRemove(ctx context.Context, id string) error {
	d.mu.Lock()
	snapshot := d.snapshotLocked()
	d.removeLocked(id)
	d.mu.Unlock()

	err := d.source.Delete(ctx, d.resourceType, id)
	if err == nil || exceptions.IsNotFound(err) {
		return nil
	}

	d.restore(snapshot)
	return err
}

// Duplicate clones a held item, strips the server-assigned id, marks the
// display name as a copy and creates it as a new record.
func (d *Dispatcher) Duplicate(ctx context.Context, id string) (*fhir_dto.Resource, error) {
	original := d.Find(id)
	if original == nil {
		return nil, exceptions.ErrResourceNotFound(d.resourceType, id)
	}

	duplicate := original.Clone()
	duplicate.ClearID()
	duplicate.Delete(constvars.FhirFieldMeta)
	applyCopySuffix(duplicate)

	return d.CreateAndAppend(ctx, duplicate)
}

// DeleteMany dispatches the deletes concurrently and reports per item. A
// not-found item still leaves the held list, but is reported as failed so
// the operator sees the store was already missing it.
func (d *Dispatcher) DeleteMany(ctx context.Context, ids []string) *responses.BulkReport {
	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = d.source.Delete(ctx, d.resourceType, id)
		}(i, id)
	}
	wg.Wait()

	report := &responses.BulkReport{Succeeded: []string{}, Failed: []responses.BulkFailure{}}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, id := range ids {
		switch {
		case errs[i] == nil:
			d.removeLocked(id)
			report.Succeeded = append(report.Succeeded, id)
		case exceptions.IsNotFound(errs[i]):
			d.removeLocked(id)
			report.Failed = append(report.Failed, responses.BulkFailure{ID: id, Reason: failureReason(errs[i])})
		default:
			report.Failed = append(report.Failed, responses.BulkFailure{ID: id, Reason: failureReason(errs[i])})
		}
	}
	return report
}

// SetStatusMany updates the status of each held item concurrently. Items
// that fail keep their pre-mutation state; items the list does not hold are
// reported as not found without a store call.
func (d *Dispatcher) SetStatusMany(ctx context.Context, ids []string, status string) *responses.BulkReport {
	candidates := make([]*fhir_dto.Resource, len(ids))
	d.mu.Lock()
	for i, id := range ids {
		if held := d.findLocked(id); held != nil {
			changed := held.Clone()
			changed.Set(constvars.FhirFieldStatus, status)
			candidates[i] = changed
		}
	}
	d.mu.Unlock()

	stored := make([]*fhir_dto.Resource, len(ids))
	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		if candidates[i] == nil {
			errs[i] = exceptions.ErrResourceNotFound(d.resourceType, id)
			continue
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			stored[i], errs[i] = d.source.Update(ctx, d.resourceType, id, candidates[i])
		}(i, id)
	}
	wg.Wait()

	report := &responses.BulkReport{Succeeded: []string{}, Failed: []responses.BulkFailure{}}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, id := range ids {
		if errs[i] != nil {
			report.Failed = append(report.Failed, responses.BulkFailure{ID: id, Reason: failureReason(errs[i])})
			continue
		}
		for j, held := range d.held {
			if held.ID() == id {
				d.held[j] = stored[i]
				break
			}
		}
		report.Succeeded = append(report.Succeeded, id)
	}
	return report
}

func (d *Dispatcher) removeLocked(id string) {
	for i, resource := range d.held {
		if resource.ID() == id {
			d.held = append(d.held[:i:i], d.held[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) restore(snapshot []*fhir_dto.Resource) {
	d.Log.Warn("store dispatch failed, restoring held snapshot",
		zap.String(constvars.LoggingResourceTypeKey, d.resourceType),
	)
	d.mu.Lock()
	d.held = snapshot
	d.mu.Unlock()
}

func failureReason(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return string(customErr.Kind)
	}
	return string(exceptions.KindInternal)
}

// applyCopySuffix marks the duplicate's primary display field. The display
// field differs per resource type, so the candidates are probed in order
// and the first present one is suffixed.
func applyCopySuffix(resource *fhir_dto.Resource) {
	if name, ok := resource.String("name"); ok {
		resource.Set("name", name+constvars.ViewModelCopySuffix)
		return
	}

	var names []fhir_dto.HumanName
	if resource.Decode("name", &names) && len(names) > 0 {
		if names[0].Text == "" {
			names[0].Text = humanNameText(names[0])
		}
		names[0].Text += constvars.ViewModelCopySuffix
		resource.Set("name", names)
		return
	}

	if title, ok := resource.String("title"); ok {
		resource.Set("title", title+constvars.ViewModelCopySuffix)
		return
	}

	if description, ok := resource.String("description"); ok {
		resource.Set("description", description+constvars.ViewModelCopySuffix)
		return
	}

	var code fhir_dto.CodeableConcept
	if resource.Decode("code", &code) && code.Text != "" {
		code.Text += constvars.ViewModelCopySuffix
		resource.Set("code", code)
	}
}

func humanNameText(name fhir_dto.HumanName) string {
	parts := []string{}
	parts = append(parts, name.Given...)
	if name.Family != "" {
		parts = append(parts, name.Family)
	}
	text := ""
	for i, part := range parts {
		if i > 0 {
			text += " "
		}
		text += part
	}
	return text
}
