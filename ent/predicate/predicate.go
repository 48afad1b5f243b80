// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AlertEvent is the predicate function for alertevent builders.
type AlertEvent func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// IncidentAlert is the predicate function for incidentalert builders.
type IncidentAlert func(*sql.Selector)

// IncidentCitation is the predicate function for incidentcitation builders.
type IncidentCitation func(*sql.Selector)

// IncidentSuggestion is the predicate function for incidentsuggestion builders.
type IncidentSuggestion func(*sql.Selector)

// IncidentThought is the predicate function for incidentthought builders.
type IncidentThought func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
