package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that run at the fixed physics rate.
// FixedUpdate is called before the physics world steps.
type FixedUpdater interface {
	FixedUpdate(deltaTime float32)
}

// Destroyable is implemented by components that need to clean up when their
// GameObject is destroyed. OnDestroy runs before the object leaves the scene.
type Destroyable interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Now returns the scene clock of the owning GameObject, or 0 when detached.
func (b *BaseComponent) Now() float32 {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return 0
	}
	return b.gameObject.Scene.Time
}
