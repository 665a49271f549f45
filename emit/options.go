package emit

import "github.com/teranos/uibind/model"

const (
	DefaultHostImport   = "github.com/teranos/uibind/ui"
	DefaultHostPackage  = "ui"
	DefaultEventsSuffix = "Events"
	DefaultMethod       = "Draw"
)

// FuncResolver resolves the result type of a user provider function named
// in an annotation, e.g. the map function of a nested field
type FuncResolver interface {
	Result(name string) (model.TypeDesc, bool)
}

// Options configures emission
type Options struct {
	HostImport   string // Import path of the host package
	HostPackage  string // Name generated code refers to the host package by
	EventsSuffix string // Appended to an aggregate name to form its events type
	Method       string // Draw method name, also used to draw nested fields
	Version      string // Generator version recorded in the file header
	Funcs        FuncResolver
}

func (o Options) hostImport() string {
	if o.HostImport == "" {
		return DefaultHostImport
	}
	return o.HostImport
}

func (o Options) host() string {
	if o.HostPackage == "" {
		return DefaultHostPackage
	}
	return o.HostPackage
}

func (o Options) eventsSuffix() string {
	if o.EventsSuffix == "" {
		return DefaultEventsSuffix
	}
	return o.EventsSuffix
}

func (o Options) method() string {
	if o.Method == "" {
		return DefaultMethod
	}
	return o.Method
}

// EventsName returns the events type name of an aggregate
func (o Options) EventsName(agg *model.Aggregate) string {
	if agg.Events != "" {
		return agg.Events
	}
	return agg.Name + o.eventsSuffix()
}

// MethodName returns the draw method name of an aggregate
func (o Options) MethodName(agg *model.Aggregate) string {
	if agg.Method != "" {
		return agg.Method
	}
	return o.method()
}
