// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cyberpath/ent/mentorevent"
	"github.com/abhisek/cyberpath/ent/predicate"
)

// MentorEventUpdate is the builder for updating MentorEvent entities.
type MentorEventUpdate struct {
	config
	hooks    []Hook
	mutation *MentorEventMutation
}

// Where appends a list predicates to the MentorEventUpdate builder.
func (_u *MentorEventUpdate) Where(ps ...predicate.MentorEvent) *MentorEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MentorEventUpdate) SetTimestamp(v time.Time) *MentorEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableTimestamp(v *time.Time) *MentorEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MentorEventUpdate) SetProvider(v string) *MentorEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableProvider(v *string) *MentorEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *MentorEventUpdate) SetModel(v string) *MentorEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableModel(v *string) *MentorEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *MentorEventUpdate) SetTier(v string) *MentorEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableTier(v *string) *MentorEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *MentorEventUpdate) SetLatencyMs(v int64) *MentorEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableLatencyMs(v *int64) *MentorEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *MentorEventUpdate) AddLatencyMs(v int64) *MentorEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *MentorEventUpdate) SetSuccess(v bool) *MentorEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableSuccess(v *bool) *MentorEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MentorEventUpdate) SetErrorMessage(v string) *MentorEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MentorEventUpdate) SetNillableErrorMessage(v *string) *MentorEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MentorEventUpdate) ClearErrorMessage() *MentorEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the MentorEventMutation object of the builder.
func (_u *MentorEventUpdate) Mutation() *MentorEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentorEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentorEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentorEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentorEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MentorEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mentorevent.Table, mentorevent.Columns, sqlgraph.NewFieldSpec(mentorevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(mentorevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(mentorevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(mentorevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(mentorevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(mentorevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(mentorevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(mentorevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mentorevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(mentorevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentorEventUpdateOne is the builder for updating a single MentorEvent entity.
type MentorEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentorEventMutation
}

// SetTimestamp sets the "timestamp" field.
func (_u *MentorEventUpdateOne) SetTimestamp(v time.Time) *MentorEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableTimestamp(v *time.Time) *MentorEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MentorEventUpdateOne) SetProvider(v string) *MentorEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableProvider(v *string) *MentorEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *MentorEventUpdateOne) SetModel(v string) *MentorEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableModel(v *string) *MentorEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *MentorEventUpdateOne) SetTier(v string) *MentorEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableTier(v *string) *MentorEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *MentorEventUpdateOne) SetLatencyMs(v int64) *MentorEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableLatencyMs(v *int64) *MentorEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *MentorEventUpdateOne) AddLatencyMs(v int64) *MentorEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *MentorEventUpdateOne) SetSuccess(v bool) *MentorEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableSuccess(v *bool) *MentorEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MentorEventUpdateOne) SetErrorMessage(v string) *MentorEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MentorEventUpdateOne) SetNillableErrorMessage(v *string) *MentorEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MentorEventUpdateOne) ClearErrorMessage() *MentorEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the MentorEventMutation object of the builder.
func (_u *MentorEventUpdateOne) Mutation() *MentorEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentorEventUpdate builder.
func (_u *MentorEventUpdateOne) Where(ps ...predicate.MentorEvent) *MentorEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentorEventUpdateOne) Select(field string, fields ...string) *MentorEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentorEvent entity.
func (_u *MentorEventUpdateOne) Save(ctx context.Context) (*MentorEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentorEventUpdateOne) SaveX(ctx context.Context) *MentorEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentorEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentorEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MentorEventUpdateOne) sqlSave(ctx context.Context) (_node *MentorEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(mentorevent.Table, mentorevent.Columns, sqlgraph.NewFieldSpec(mentorevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MentorEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentorevent.FieldID)
		for _, f := range fields {
			if !mentorevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mentorevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(mentorevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(mentorevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(mentorevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(mentorevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(mentorevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(mentorevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(mentorevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mentorevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(mentorevent.FieldErrorMessage, field.TypeString)
	}
	_node = &MentorEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
