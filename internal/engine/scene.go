package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject

	// Time is the scene clock in seconds, advanced by Tick.
	Time   float32
	uidMap map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject registers g and all of its children with the scene.
func (s *Scene) AddGameObject(g *GameObject) {
	if g.Scene == s {
		return
	}
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
	for _, child := range g.Children {
		s.AddGameObject(child)
	}
}

// RemoveGameObject removes g and its children from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			if g.Scene == s {
				g.Scene = nil
			}
			return
		}
	}
}

// Destroy runs OnDestroy on every component of g and its children,
// marks them destroyed and removes them from the scene.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	for _, child := range append([]*GameObject(nil), g.Children...) {
		s.Destroy(child)
	}
	for _, c := range g.components {
		if d, ok := c.(Destroyable); ok {
			d.OnDestroy()
		}
	}
	g.destroyed = true
	s.RemoveGameObject(g)
}

// FindByUID returns the GameObject with the given UID in O(1).
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.live() {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.live() {
		g.Update(deltaTime)
	}
}

// FixedUpdate runs the fixed-rate step of every live GameObject.
func (s *Scene) FixedUpdate(deltaTime float32) {
	for _, g := range s.live() {
		g.FixedUpdate(deltaTime)
	}
}

// Tick advances the scene clock.
func (s *Scene) Tick(deltaTime float32) {
	s.Time += deltaTime
}

// live copies the object list so components may spawn or destroy during iteration.
func (s *Scene) live() []*GameObject {
	out := make([]*GameObject, len(s.GameObjects))
	copy(out, s.GameObjects)
	return out
}
