package ecs

// System is one step of a frame. Implementations are structs whose Query and Singleton
// fields are bound by the Scheduler at registration time; any other fields persist
// between frames and can hold system state.
type System interface {
	Execute(frame *UpdateFrame)
}
