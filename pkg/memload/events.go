package memload

// RegisterEvent describes a completed registration.
type RegisterEvent struct {
	Domain     DomainID
	Assemblies int
	Bytes      int
	// Replaced is true when an earlier registration of the domain was dropped.
	Replaced bool
}

// ReleaseEvent describes a domain teardown that dropped a registration.
type ReleaseEvent struct {
	Domain     DomainID
	Assemblies int
	Bytes      int
}

// ResolveEvent describes a resolution request.
type ResolveEvent struct {
	Domain DomainID
	Name   string
	Found  bool
	Err    error
}

// EventHandler receives registry notifications.
type EventHandler interface {
	OnRegister(event RegisterEvent)
	OnRelease(event ReleaseEvent)
	OnResolve(event ResolveEvent)
}

// BaseEventHandler implements EventHandler with no-ops. Embed it to handle
// only the events you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnRegister(RegisterEvent) {}
func (BaseEventHandler) OnRelease(ReleaseEvent)   {}
func (BaseEventHandler) OnResolve(ResolveEvent)   {}
