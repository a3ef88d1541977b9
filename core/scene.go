package core

// Scene is the lifecycle contract for anything the scene manager drives
type Scene interface {
	OnEnter()
	OnUpdate(dt float64)
	OnExit()
}
