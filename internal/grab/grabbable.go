package grab

import (
	"slices"

	"vrgrab/internal/engine"
	"vrgrab/internal/locomotion"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// teleportGrace suppresses break-distance checks right after a teleport.
const teleportGrace = 0.2

// Grabbable is the ownership and physics state machine of one holdable object.
type Grabbable struct {
	engine.BaseComponent
	svc *Services

	// Enabled false makes the object ungrabbable and releases it if held.
	Enabled bool

	GrabButton   GrabButton
	HoldType     HoldType
	GrabPhysics  GrabPhysics
	GrabMechanic GrabType

	// GrabSpeed drives kinematic lerping and linear remote flight, in units per second.
	GrabSpeed float32

	RemoteGrabbable    bool
	RemoteGrabDistance float32
	RemoteGrabMechanic RemoteGrabMovement

	// RemoteVelocityGain converts remaining distance into closing speed.
	RemoteVelocityGain float32
	FlickTime          float32
	FlickCatchDistance float32

	ThrowForceMultiplier        float32
	ThrowForceMultiplierAngular float32
	CanBeDropped                bool
	CanBeSnappedToSnapZone      bool
	ForceDisableKinematicOnDrop bool

	// ParentToHands parents the object to its holder in kinematic mode.
	ParentToHands bool

	// BreakDistance drops the object when it is this far from where the
	// holder wants it. Zero disables the check.
	BreakDistance float32

	// OtherGrabbableMustBeGrabbed drops this object whenever that one is not held.
	OtherGrabbableMustBeGrabbed *Grabbable

	SecondaryGrabBehavior       OtherGrabBehavior
	TwoHandedDropBehavior       TwoHandedDropMechanic
	TwoHandedRotation           TwoHandedRotation
	TwoHandedPosition           TwoHandedPosition
	TwoHandedPositionLerpAmount float32
	TwoHandedRotationLerpAmount float32

	// Spring and Damper drive the joint while the object touches nothing.
	Spring          float32
	Damper          float32
	CollisionSpring float32
	CollisionDamper float32

	MaxLinearSpeed           float32
	MaxVelocityChange        float32
	MaxAngularSpeed          float32
	MaxAngularVelocityChange float32

	// GrabPoints are the candidate attach poses. Empty means they are collected
	// from the object's children on Start.
	GrabPoints []*GrabPoint

	body      physics.Body
	heldBy    []*Grabber
	// Grabbers whose trigger currently has the object as a valid near candidate
	inReachOf []*Grabber
	grabPoint *GrabPoint
	active    GrabPhysics

	// Object pose relative to the primary and secondary holders
	primaryOffset   engine.Pose
	secondaryOffset engine.Pose

	// Object rotation relative to the two-hand look frame
	twoHandOffset rl.Quaternion
	joint         physics.Joint

	collisions        []physics.Collider
	pendingCollisions []physics.Collider

	ignored []ignoredPair

	lastGrabTime     float32
	lastDropTime     float32
	lastTeleportTime float32

	locked       bool
	lockRotation bool
	lockedLocal  engine.Pose

	remoteFlying bool
	flyingTo     *Grabber
	flightStart  float32

	captured       bool
	originalFlags  physics.BodyFlags
	originalParent *engine.GameObject
	OriginalScale  rl.Vector3

	grabPointOverrides map[*Grabber]*GrabPoint

	beforeMoveID engine.ListenerID
	afterMoveID  engine.ListenerID
}

type ignoredPair struct {
	a, b physics.Collider
}

func NewGrabbable(svc *Services) *Grabbable {
	if svc == nil {
		svc = &Services{}
	}
	return &Grabbable{
		svc:                         svc,
		Enabled:                     true,
		GrabButton:                  ButtonInherit,
		HoldType:                    HoldInherit,
		GrabPhysics:                 PhysicsVelocity,
		GrabMechanic:                GrabSnap,
		GrabSpeed:                   15,
		RemoteGrabDistance:          2,
		RemoteVelocityGain:          10,
		FlickTime:                   0.5,
		FlickCatchDistance:          0.25,
		ThrowForceMultiplier:        2,
		ThrowForceMultiplierAngular: 1.5,
		CanBeDropped:                true,
		CanBeSnappedToSnapZone:      true,
		ParentToHands:               true,
		SecondaryGrabBehavior:       OtherGrabSwapHands,
		TwoHandedDropBehavior:       TwoHandedDrop,
		TwoHandedPositionLerpAmount: 0.5,
		TwoHandedRotationLerpAmount: 1,
		Spring:                      600,
		Damper:                      40,
		CollisionSpring:             150,
		CollisionDamper:             25,
		MaxLinearSpeed:              20,
		MaxVelocityChange:           10,
		MaxAngularSpeed:             20,
		MaxAngularVelocityChange:    20,
		lastGrabTime:                -1e9,
		lastDropTime:                -1e9,
		lastTeleportTime:            -1e9,
		twoHandOffset:               rl.QuaternionIdentity(),
		grabPointOverrides:          make(map[*Grabber]*GrabPoint),
	}
}

func (g *Grabbable) Start() {
	g.capture()
	if len(g.GrabPoints) == 0 {
		g.GrabPoints = engine.GetComponentsInChildren[*GrabPoint](g.GetGameObject())
	}
	if bus := g.svc.Locomotion; bus != nil && g.beforeMoveID == 0 {
		g.beforeMoveID = bus.Before.AddListener(g.lock)
		g.afterMoveID = bus.After.AddListener(g.unlock)
	}
}

// capture records the body flags, parent and scale restored on every drop.
func (g *Grabbable) capture() {
	if g.captured {
		return
	}
	obj := g.GetGameObject()
	if obj == nil {
		return
	}
	g.captured = true
	g.body = engine.GetComponent[physics.Body](obj)
	if g.body != nil {
		g.originalFlags = g.body.Flags()
	}
	g.originalParent = obj.Parent
	g.OriginalScale = obj.Transform.Scale
}

// OriginalFlags returns the body flags captured at creation.
func (g *Grabbable) OriginalFlags() physics.BodyFlags {
	return g.originalFlags
}

// OnDestroy releases every holder and leaves the locomotion bus.
func (g *Grabbable) OnDestroy() {
	g.ReleaseAll()
	g.CancelRemoteGrab()
	if bus := g.svc.Locomotion; bus != nil {
		bus.Before.RemoveListener(g.beforeMoveID)
		bus.After.RemoveListener(g.afterMoveID)
		g.beforeMoveID, g.afterMoveID = 0, 0
	}
}

// Body returns the attached rigid body, nil if the object has none.
func (g *Grabbable) Body() physics.Body {
	return g.body
}

func (g *Grabbable) BeingHeld() bool {
	return len(g.heldBy) > 0
}

// HeldBy returns the holders, primary first.
func (g *Grabbable) HeldBy() []*Grabber {
	return append([]*Grabber(nil), g.heldBy...)
}

func (g *Grabbable) GetPrimaryGrabber() *Grabber {
	if len(g.heldBy) == 0 {
		return nil
	}
	return g.heldBy[0]
}

func (g *Grabbable) GetSecondaryGrabber() *Grabber {
	if len(g.heldBy) < 2 {
		return nil
	}
	return g.heldBy[1]
}

func (g *Grabbable) BeingHeldWithTwoHands() bool {
	return len(g.heldBy) > 1
}

// ActiveGrabPoint returns the point the primary holder snapped to, if any.
func (g *Grabbable) ActiveGrabPoint() *GrabPoint {
	return g.grabPoint
}

// ActivePhysics returns the strategy driving the object while held.
func (g *Grabbable) ActivePhysics() GrabPhysics {
	return g.active
}

func (g *Grabbable) Joint() physics.Joint {
	return g.joint
}

func (g *Grabbable) IsLocked() bool {
	return g.locked
}

func (g *Grabbable) IsRemoteFlying() bool {
	return g.remoteFlying
}

// Collisions returns a copy of the colliders touched during the previous
// physics step.
func (g *Grabbable) Collisions() []physics.Collider {
	return slices.Clone(g.collisions)
}

func (g *Grabbable) LastGrabTime() float32 { return g.lastGrabTime }
func (g *Grabbable) LastDropTime() float32 { return g.lastDropTime }

// IsGrabbable reports whether the object accepts new grabs at all.
func (g *Grabbable) IsGrabbable() bool {
	obj := g.GetGameObject()
	return g.Enabled && obj != nil && obj.ActiveInHierarchy()
}

func (g *Grabbable) heldBySnapZone() bool {
	p := g.GetPrimaryGrabber()
	return p != nil && p.snapZone != nil
}

// GetClosestGrabber returns the nearest grabber that holds the object or has
// it in reach, nil when none does.
func (g *Grabbable) GetClosestGrabber() *Grabber {
	var closest *Grabber
	best := float32(0)
	pos := g.GetGameObject().WorldPosition()
	consider := func(h *Grabber) {
		obj := h.GetGameObject()
		if obj == nil || obj.Destroyed() {
			return
		}
		d := rl.Vector3Distance(pos, obj.WorldPosition())
		if closest == nil || d < best {
			closest, best = h, d
		}
	}
	for _, h := range g.heldBy {
		consider(h)
	}
	for _, h := range g.inReachOf {
		consider(h)
	}
	return closest
}

func (g *Grabbable) addInReach(grabber *Grabber) {
	if !slices.Contains(g.inReachOf, grabber) {
		g.inReachOf = append(g.inReachOf, grabber)
	}
}

func (g *Grabbable) removeInReach(grabber *Grabber) {
	if i := slices.Index(g.inReachOf, grabber); i >= 0 {
		g.inReachOf = slices.Delete(g.inReachOf, i, i+1)
	}
}

// SetGrabPointOverride forces grabber to use point, nil clears it.
func (g *Grabbable) SetGrabPointOverride(grabber *Grabber, point *GrabPoint) {
	if point == nil {
		delete(g.grabPointOverrides, grabber)
		return
	}
	g.grabPointOverrides[grabber] = point
}

// GetClosestGrabPoint returns the nearest point grabber may use. Points for
// the other hand, inactive points and points outside their approach angle
// are excluded. Distance ties go to the smaller approach angle.
func (g *Grabbable) GetClosestGrabPoint(grabber *Grabber) *GrabPoint {
	if grabber == nil {
		return nil
	}
	pose := grabber.GetGameObject().WorldPose()
	if p, ok := g.grabPointOverrides[grabber]; ok && p.ValidFor(grabber.Hand) {
		return p
	}

	var best *GrabPoint
	var bestDist, bestAngle float32
	for _, p := range g.GrabPoints {
		obj := p.GetGameObject()
		if obj == nil || !obj.ActiveInHierarchy() || !p.ValidFor(grabber.Hand) || !p.accepts(pose) {
			continue
		}
		dist := rl.Vector3Distance(obj.WorldPosition(), pose.Position)
		angle := p.AngleTo(pose)
		if best == nil || dist < bestDist || (dist == bestDist && angle < bestAngle) {
			best, bestDist, bestAngle = p, dist, angle
		}
	}
	return best
}

// holdOffset returns the object's pose relative to grabber for a fresh
// primary grab, together with the grab point used.
func (g *Grabbable) holdOffset(grabber *Grabber) (engine.Pose, *GrabPoint) {
	obj := g.GetGameObject()
	hand := grabber.GetGameObject().WorldPose()
	if grabber.snapZone != nil {
		return engine.IdentityPose(), nil
	}
	if g.GrabMechanic == GrabPrecise {
		return obj.WorldPose().RelativeTo(hand), nil
	}
	point := g.GetClosestGrabPoint(grabber)
	if point == nil {
		return engine.IdentityPose(), nil
	}
	// Object pose in the grab point's frame, so the point lands on the hand
	return obj.WorldPose().RelativeTo(point.GetGameObject().WorldPose()), point
}

// GrabItem attaches the object to grabber as primary or, under DualGrab,
// secondary holder. A conflicting holder is released first.
func (g *Grabbable) GrabItem(grabber *Grabber) {
	obj := g.GetGameObject()
	if grabber == nil || obj == nil || obj.Destroyed() {
		return
	}
	g.capture()
	if g.holderIndex(grabber) >= 0 {
		return
	}

	if g.remoteFlying && g.flyingTo != grabber {
		g.CancelRemoteGrab()
	}
	// The hand can hold or receive one object at a time
	if flyer := grabber.flying; flyer != nil && flyer != g {
		flyer.CancelRemoteGrab()
	}
	if held := grabber.HeldGrabbable; held != nil && held != g {
		held.DropItem(grabber, false, true)
	}

	if g.BeingHeld() {
		primary := g.GetPrimaryGrabber()
		dual := g.SecondaryGrabBehavior == OtherGrabDualGrab && grabber.snapZone == nil && primary.snapZone == nil
		if dual {
			g.grabSecondary(grabber)
			return
		}
		g.svc.logger().Debug("releasing current holder for new grab",
			zap.String("object", obj.Name),
			zap.Stringer("from", primary.Hand),
			zap.Stringer("to", grabber.Hand))
		g.ReleaseAll()
	}

	g.grabPrimary(grabber)
}

func (g *Grabbable) grabPrimary(grabber *Grabber) {
	g.clearIgnores()
	if g.remoteFlying {
		g.endFlight()
	}

	g.primaryOffset, g.grabPoint = g.holdOffset(grabber)
	g.heldBy = []*Grabber{grabber}
	grabber.setHeld(g)
	g.ignoreHolder(grabber)

	g.active = g.GrabPhysics
	if grabber.snapZone != nil {
		g.active = PhysicsKinematic
	}
	g.setupPhysics(grabber)

	if g.body != nil {
		g.body.SetVelocity(rl.Vector3{})
		g.body.SetAngularVelocity(rl.Vector3{})
	}

	g.lastGrabTime = g.Now()
	g.svc.logger().Debug("grabbed",
		zap.String("object", g.GetGameObject().Name),
		zap.Stringer("hand", grabber.Hand),
		zap.Stringer("physics", g.active))

	for _, h := range g.hooks() {
		h.OnGrab(grabber)
	}
	grabber.Grabbed.Invoke(g)
}

func (g *Grabbable) grabSecondary(grabber *Grabber) {
	if old := g.GetSecondaryGrabber(); old != nil {
		g.DropItem(old, false, false)
	}
	g.secondaryOffset = g.GetGameObject().WorldPose().RelativeTo(grabber.GetGameObject().WorldPose())
	g.heldBy = append(g.heldBy, grabber)
	grabber.setHeld(g)
	g.ignoreHolder(grabber)

	if look, ok := g.lookFrame(); ok {
		g.twoHandOffset = rl.QuaternionNormalize(rl.QuaternionMultiply(rl.QuaternionInvert(look), g.GetGameObject().WorldRotation()))
	}

	g.svc.logger().Debug("secondary grab",
		zap.String("object", g.GetGameObject().Name),
		zap.Stringer("hand", grabber.Hand))
	for _, h := range g.hooks() {
		h.OnSecondaryGrab(grabber)
	}
	grabber.Grabbed.Invoke(g)
}

// DropItem releases grabber's hold. Dropping an object grabber does not
// hold is a no-op. resetVelocity applies the holder's tracked throw
// velocity; resetParent restores the parent captured at creation.
func (g *Grabbable) DropItem(grabber *Grabber, resetVelocity, resetParent bool) {
	idx := g.holderIndex(grabber)
	if idx < 0 {
		return
	}
	if idx > 0 {
		g.dropSecondary(grabber)
		return
	}

	secondary := g.GetSecondaryGrabber()
	if secondary != nil && g.TwoHandedDropBehavior == TwoHandedNone {
		g.promoteSecondary(grabber, secondary)
		return
	}
	if secondary != nil {
		g.dropSecondary(secondary)
	}

	g.teardownPhysics(resetParent)
	g.clearIgnores()
	g.heldBy = nil
	g.grabPoint = nil
	g.active = PhysicsNone
	g.lastDropTime = g.Now()

	if resetVelocity {
		g.applyThrow(grabber)
	}

	grabber.clearHeld(g)
	g.svc.logger().Debug("released",
		zap.String("object", g.GetGameObject().Name),
		zap.Stringer("hand", grabber.Hand))
	for _, h := range g.hooks() {
		h.OnRelease()
	}
	grabber.Released.Invoke(g)

	if secondary != nil && g.TwoHandedDropBehavior == TwoHandedTransfer {
		g.grabPrimary(secondary)
	}
}

func (g *Grabbable) dropSecondary(grabber *Grabber) {
	g.removeHolder(grabber)
	g.restoreIgnores(grabber)
	g.twoHandOffset = rl.QuaternionIdentity()
	grabber.clearHeld(g)
	for _, h := range g.hooks() {
		h.OnSecondaryRelease(grabber)
	}
	grabber.Released.Invoke(g)
}

// promoteSecondary keeps the object held by the secondary hand alone,
// continuing from the pose it has now.
func (g *Grabbable) promoteSecondary(primary, secondary *Grabber) {
	g.teardownJoint()
	g.restoreIgnores(primary)
	g.removeHolder(primary)
	primary.clearHeld(g)
	primary.Released.Invoke(g)

	g.primaryOffset = g.GetGameObject().WorldPose().RelativeTo(secondary.GetGameObject().WorldPose())
	g.grabPoint = nil
	g.twoHandOffset = rl.QuaternionIdentity()
	g.setupPhysics(secondary)
	g.svc.logger().Debug("secondary promoted",
		zap.String("object", g.GetGameObject().Name),
		zap.Stringer("hand", secondary.Hand))
}

// ReleaseAll drops every holder without applying throw velocity.
func (g *Grabbable) ReleaseAll() {
	if !g.BeingHeld() {
		return
	}
	if s := g.GetSecondaryGrabber(); s != nil {
		g.dropSecondary(s)
	}
	if p := g.GetPrimaryGrabber(); p != nil {
		g.DropItem(p, false, true)
	}
}

func (g *Grabbable) applyThrow(grabber *Grabber) {
	if g.body == nil || grabber.Tracker == nil {
		return
	}
	v := rl.Vector3Scale(grabber.Tracker.AveragedVelocity(), g.ThrowForceMultiplier)
	w := rl.Vector3Scale(grabber.Tracker.AveragedAngularVelocity(), g.ThrowForceMultiplierAngular)
	if !engine.IsFinite(v) || !engine.IsFinite(w) {
		g.svc.logger().Warn("discarding non-finite release velocity",
			zap.String("object", g.GetGameObject().Name))
		return
	}
	g.body.SetVelocity(v)
	g.body.SetAngularVelocity(w)
}

func (g *Grabbable) holderIndex(grabber *Grabber) int {
	for i, h := range g.heldBy {
		if h == grabber {
			return i
		}
	}
	return -1
}

func (g *Grabbable) removeHolder(grabber *Grabber) {
	if i := g.holderIndex(grabber); i >= 0 {
		g.heldBy = append(g.heldBy[:i], g.heldBy[i+1:]...)
	}
}

func (g *Grabbable) hooks() []GrabbableEvents {
	obj := g.GetGameObject()
	if obj == nil {
		return nil
	}
	var out []GrabbableEvents
	for _, c := range obj.Components() {
		if h, ok := c.(GrabbableEvents); ok {
			out = append(out, h)
		}
	}
	return out
}

func (g *Grabbable) colliders() []physics.Collider {
	return engine.GetComponentsInChildren[physics.Collider](g.GetGameObject())
}

// ignoreHolder stops the object colliding with the holder's own colliders.
func (g *Grabbable) ignoreHolder(grabber *Grabber) {
	backend := g.svc.Physics
	if backend == nil {
		return
	}
	hand := engine.GetComponentsInChildren[physics.Collider](grabber.GetGameObject())
	for _, a := range g.colliders() {
		for _, b := range hand {
			if b.Trigger() {
				continue
			}
			backend.IgnoreCollision(a, b, true)
			g.ignored = append(g.ignored, ignoredPair{a: a, b: b})
		}
	}
}

func (g *Grabbable) restoreIgnores(grabber *Grabber) {
	backend := g.svc.Physics
	if backend == nil {
		return
	}
	hand := grabber.GetGameObject()
	kept := g.ignored[:0]
	for _, p := range g.ignored {
		if p.b.GetGameObject().IsChildOf(hand) {
			backend.IgnoreCollision(p.a, p.b, false)
			continue
		}
		kept = append(kept, p)
	}
	g.ignored = kept
}

func (g *Grabbable) clearIgnores() {
	if backend := g.svc.Physics; backend != nil {
		for _, p := range g.ignored {
			backend.IgnoreCollision(p.a, p.b, false)
		}
	}
	g.ignored = nil
}

func (g *Grabbable) OnCollisionEnter(c physics.Collision) { g.recordCollision(c.OtherCollider) }
func (g *Grabbable) OnCollisionStay(c physics.Collision)  { g.recordCollision(c.OtherCollider) }
func (g *Grabbable) OnCollisionExit(physics.Collision)    {}

func (g *Grabbable) recordCollision(other physics.Collider) {
	for _, c := range g.pendingCollisions {
		if c == other {
			return
		}
	}
	g.pendingCollisions = append(g.pendingCollisions, other)
}

// FixedUpdate runs once per physics tick before the physics step.
func (g *Grabbable) FixedUpdate(deltaTime float32) {
	// Contacts reported by the previous step become current; nothing carries over
	g.collisions, g.pendingCollisions = g.pendingCollisions, g.collisions[:0]

	if g.remoteFlying {
		g.updateRemote(deltaTime)
		return
	}
	if !g.BeingHeld() {
		return
	}
	if g.locked {
		g.pin()
		return
	}
	if !g.IsGrabbable() {
		g.ReleaseAll()
		return
	}
	if g.checkBreakDistance() {
		return
	}
	if other := g.OtherGrabbableMustBeGrabbed; other != nil && !other.BeingHeld() {
		g.svc.logger().Debug("required grabbable no longer held", zap.String("object", g.GetGameObject().Name))
		g.ReleaseAll()
		return
	}
	g.advancePhysics(deltaTime)
}

// checkBreakDistance drops the object when it is too far from its target.
func (g *Grabbable) checkBreakDistance() bool {
	if g.BreakDistance <= 0 || g.heldBySnapZone() {
		return false
	}
	if g.Now()-g.lastTeleportTime < teleportGrace {
		return false
	}
	target := g.targetPose()
	dist := rl.Vector3Distance(g.GetGameObject().WorldPosition(), target.Position)
	if dist <= g.BreakDistance {
		return false
	}
	g.svc.logger().Debug("break distance exceeded",
		zap.String("object", g.GetGameObject().Name),
		zap.Float32("distance", dist))
	g.ReleaseAll()
	return true
}

// targetPose is where the holders want the object this tick.
func (g *Grabbable) targetPose() engine.Pose {
	primary := g.GetPrimaryGrabber()
	if primary == nil {
		return g.GetGameObject().WorldPose()
	}
	target := primary.GetGameObject().WorldPose().Mul(g.primaryOffset)

	secondary := g.GetSecondaryGrabber()
	if secondary == nil {
		return target
	}
	if g.TwoHandedPosition == TwoHandedPositionLerp {
		other := secondary.GetGameObject().WorldPose().Mul(g.secondaryOffset)
		target.Position = rl.Vector3Lerp(target.Position, other.Position, engine.Clamp01(g.TwoHandedPositionLerpAmount))
	}
	if g.TwoHandedRotation == TwoHandedLookAtSecondary {
		if look, ok := g.lookFrame(); ok {
			rot := rl.QuaternionNormalize(rl.QuaternionMultiply(look, g.twoHandOffset))
			target.Rotation = rl.QuaternionSlerp(target.Rotation, rot, engine.Clamp01(g.TwoHandedRotationLerpAmount))
		}
	}
	return target
}

// lookFrame is the rotation facing from the primary hand to the secondary.
func (g *Grabbable) lookFrame() (rl.Quaternion, bool) {
	primary, secondary := g.GetPrimaryGrabber(), g.GetSecondaryGrabber()
	if primary == nil || secondary == nil {
		return rl.QuaternionIdentity(), false
	}
	p := primary.GetGameObject()
	dir := rl.Vector3Subtract(secondary.GetGameObject().WorldPosition(), p.WorldPosition())
	if rl.Vector3Length(dir) < 0.001 {
		return rl.QuaternionIdentity(), false
	}
	return engine.LookRotation(dir, p.Up()), true
}

// lock pins held objects to their holder before the rig moves.
func (g *Grabbable) lock(m locomotion.Movement) {
	primary := g.GetPrimaryGrabber()
	if primary == nil || g.remoteFlying || primary.snapZone != nil {
		return
	}
	g.locked = true
	g.lockRotation = m.LockRotation
	g.lockedLocal = g.GetGameObject().WorldPose().RelativeTo(primary.GetGameObject().WorldPose())
}

func (g *Grabbable) unlock(m locomotion.Movement) {
	if !g.locked {
		return
	}
	g.pin()
	g.locked = false
	if m.Kind == locomotion.Teleport {
		g.lastTeleportTime = g.Now()
	}
	if g.body != nil && !g.body.Flags().Kinematic {
		g.body.SetVelocity(rl.Vector3{})
		g.body.SetAngularVelocity(rl.Vector3{})
	}
}

func (g *Grabbable) pin() {
	primary := g.GetPrimaryGrabber()
	if primary == nil {
		return
	}
	obj := g.GetGameObject()
	pose := primary.GetGameObject().WorldPose().Mul(g.lockedLocal)
	obj.SetWorldPosition(pose.Position)
	if g.lockRotation {
		obj.SetWorldRotation(pose.Rotation)
	}
}
