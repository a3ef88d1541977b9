package system

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/core/mocks"
	"github.com/lixenwraith/hexfire/parameter"
)

type fixedTarget mgl64.Vec2

func (f fixedTarget) Position() mgl64.Vec2 { return mgl64.Vec2(f) }

func countVariant(em *EnemyManager, v core.Variant) int {
	n := 0
	for _, e := range em.Enemies() {
		if e.Variant == v {
			n++
		}
	}
	return n
}

func TestBossExclusivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	audio.EXPECT().PlayTrack(core.TrackBoss).Times(1)

	em, _ := newEnemyManager(constRandom(0.5), audio)

	if _, err := em.Spawn(core.VariantBoss); err != nil {
		t.Fatalf("boss spawn: %v", err)
	}
	if !em.BossActive() {
		t.Fatal("Expected boss active")
	}

	before := len(em.Enemies())
	e, err := em.Spawn(core.VariantSkeleton)
	if !errors.Is(err, ErrSpawnRefused) || e != nil {
		t.Errorf("Expected skeleton refused, got %v, %v", e, err)
	}
	if _, err := em.Spawn(core.VariantBoss); !errors.Is(err, ErrSpawnRefused) {
		t.Errorf("Expected second boss refused, got %v", err)
	}
	if len(em.Enemies()) != before {
		t.Errorf("Expected pool unchanged at %d, got %d", before, len(em.Enemies()))
	}

	if _, err := em.Spawn(core.VariantItembox); err != nil {
		t.Errorf("Expected itembox allowed, got %v", err)
	}
	if n := countVariant(em, core.VariantItembox); n != 1 {
		t.Errorf("Expected 1 itembox, got %d", n)
	}
}

func TestSpawnUnknownVariant(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.5), nil)
	_, err := em.Spawn(core.Variant(42))
	if !errors.Is(err, core.ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
	if len(em.Enemies()) != 0 {
		t.Error("Expected no entity created")
	}
}

func TestUpgradeChances(t *testing.T) {
	tests := []struct {
		t            float64
		wantSkeleton float64
		wantDragon   float64
	}{
		{0, 0.18, 0.10},
		{16, 0.18 + 0.22*16.0/60, 0.10 + 0.10*16.0/60},
		{30, 0.29, 0.15},
		{60, 0.40, 0.20},
	}
	for _, tt := range tests {
		if got := SkeletonChance(tt.t); math.Abs(got-tt.wantSkeleton) > eps {
			t.Errorf("SkeletonChance(%v): expected %v, got %v", tt.t, tt.wantSkeleton, got)
		}
		if got := DragonChance(tt.t); math.Abs(got-tt.wantDragon) > eps {
			t.Errorf("DragonChance(%v): expected %v, got %v", tt.t, tt.wantDragon, got)
		}
	}
}

func TestPickVariant(t *testing.T) {
	tests := []struct {
		name  string
		t     float64
		rolls []float64
		want  core.Variant
	}{
		{"early is always ghost", 5, []float64{0}, core.VariantGhost},
		{"skeleton after 8s", 10, []float64{0.1}, core.VariantSkeleton},
		{"skeleton roll fails", 10, []float64{0.9}, core.VariantGhost},
		{"dragon overrides skeleton", 20, []float64{0.1, 0.05}, core.VariantDragon},
		{"dragon without skeleton", 20, []float64{0.9, 0.05}, core.VariantDragon},
		{"dragon roll fails", 20, []float64{0.1, 0.9}, core.VariantSkeleton},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, _ := newEnemyManager(&seqRandom{vals: tt.rolls}, nil)
			if got := em.pickVariant(tt.t); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBossSpawnsOnceAtSixty(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioSink(ctrl)
	audio.EXPECT().PlayTrack(core.TrackBoss).Times(1)
	audio.EXPECT().PlayCue(gomock.Any()).AnyTimes()

	// 0.99 never passes the random roll
	em, _ := newEnemyManager(constRandom(0.99), audio)
	em.stageTime = 59.5

	em.Update(0.5, nil)
	if n := countVariant(em, core.VariantBoss); n != 1 {
		t.Fatalf("Expected boss on the 60s frame, got %d", n)
	}

	for i := 0; i < 600; i++ {
		em.Update(1.0/60, fixedTarget{-5, 0})
	}
	if n := countVariant(em, core.VariantBoss); n != 1 {
		t.Errorf("Expected exactly one boss for the stage, got %d", n)
	}
}

func TestItemboxEveryTwentySeconds(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.99), nil)
	spawned := 0
	for i := 0; i < 45*10; i++ {
		before := countVariant(em, core.VariantItembox)
		em.Update(0.1, nil)
		if countVariant(em, core.VariantItembox) > before {
			spawned++
		}
	}
	if spawned != 2 {
		t.Errorf("Expected itemboxes at 20s and 40s, got %d", spawned)
	}
}

func TestRandomSpawnRateLimited(t *testing.T) {
	// 0.0 passes every roll; spawns are still spaced by the 0.4s limit
	em, _ := newEnemyManager(constRandom(0), nil)
	for i := 0; i < 60; i++ {
		em.Update(0.05, nil)
	}
	// 3s of stage time, a spawn whenever more than 0.4s passed since the last
	n := len(em.Enemies())
	if n < 6 || n > 7 {
		t.Errorf("Expected 6-7 spawns over 3s, got %d", n)
	}
}

func TestEnemyRemovedPastLeftBoundary(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.99), nil)

	active, _ := em.Spawn(core.VariantGhost)
	em.Update(0.001, nil)
	active.Pos = mgl64.Vec2{-9.99, 0}
	active.HP = 100

	fading, _ := em.Spawn(core.VariantSkeleton)
	em.Damage(fading, 1000)
	fading.Pos = mgl64.Vec2{-9.99, 0}
	fading.Vel = mgl64.Vec2{-5, 0}

	em.Update(0.016, nil)

	for _, e := range em.Enemies() {
		if e == active || e == fading {
			t.Errorf("Expected %s past x=-10 removed this frame", e.Variant)
		}
	}
	if active.Active {
		t.Error("Expected removed enemy inactive")
	}
}

func TestEnemyEntering(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.5), nil)
	ghost, _ := em.Spawn(core.VariantGhost)

	if ghost.State != core.StateEntering {
		t.Fatalf("Expected entering before first update, got %s", ghost.State)
	}
	em.Update(0.016, nil)
	if ghost.State != core.StateActive {
		t.Errorf("Expected ghost active after first update, got %s", ghost.State)
	}
	if ghost.Vel[0] != -parameter.GhostStats.Speed {
		t.Errorf("Expected leftward drift, got %v", ghost.Vel)
	}
	// r=0.5 centres the vertical bias
	if ghost.Vel[1] != 0 {
		t.Errorf("Expected zero vertical bias, got %v", ghost.Vel)
	}
}

func TestBossGlidesToAnchor(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.99), nil)
	boss, err := em.Spawn(core.VariantBoss)
	if err != nil {
		t.Fatal(err)
	}
	if boss.Pos[0] != parameter.SpawnOffsetX+parameter.BossStats.SpriteSize {
		t.Errorf("Expected spawn x 12.5, got %v", boss.Pos[0])
	}

	for i := 0; i < 60*8 && boss.State == core.StateEntering; i++ {
		em.Update(1.0/60, nil)
	}
	if boss.State != core.StateActive {
		t.Fatal("Expected boss active after gliding in")
	}
	if math.Abs(boss.Pos[0]-parameter.BossAnchorX) > 0.05 {
		t.Errorf("Expected boss near anchor, got %v", boss.Pos[0])
	}
}

func TestEnemyFlashAndFade(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.99), nil)
	e, _ := em.Spawn(core.VariantSkeleton)
	em.Update(0.01, nil)

	if em.Damage(e, 1) {
		t.Fatal("Expected non-lethal hit")
	}
	if e.Flash != parameter.EnemyFlashDuration {
		t.Errorf("Expected flash, got %v", e.Flash)
	}
	em.Update(0.11, nil)
	if e.Flash != 0 {
		t.Errorf("Expected flash expired, got %v", e.Flash)
	}

	vx := e.Vel[0]
	if !em.Damage(e, 100) {
		t.Fatal("Expected lethal hit")
	}
	if e.State != core.StateFading || e.Active || !e.Defeated {
		t.Errorf("Expected fading defeated enemy, got %+v", e)
	}
	if math.Abs(e.Vel[0]-(vx+e.Speed)) > eps {
		t.Errorf("Expected rightward knockback, got %v", e.Vel)
	}
	if em.Damage(e, 1) {
		t.Error("Expected a fading enemy to ignore damage")
	}

	em.Update(0.5, nil)
	if math.Abs(e.Opacity-0.5) > eps {
		t.Errorf("Expected half opacity, got %v", e.Opacity)
	}
	if math.Abs(e.Scale-(1-0.5*parameter.EnemyFadeShrink)) > eps {
		t.Errorf("Expected shrink, got %v", e.Scale)
	}
	em.Update(0.51, nil)
	if len(em.Enemies()) != 0 {
		t.Error("Expected enemy removed after fade")
	}
}

func TestItemboxDropInheritsVelocity(t *testing.T) {
	em, _ := newEnemyManager(&seqRandom{vals: []float64{0.5, 0.2}}, nil)
	box, _ := em.Spawn(core.VariantItembox)
	em.Update(0.01, nil)
	pre := box.Vel

	em.Damage(box, 100)
	kind, vel, ok := em.TakeDrop(box)
	if !ok {
		t.Fatal("Expected a drop")
	}
	if kind != core.ItemHealth {
		t.Errorf("Expected health for roll 0.2, got %s", kind)
	}
	if vel != pre {
		t.Errorf("Expected drop velocity %v, got %v", pre, vel)
	}
	if _, _, ok := em.TakeDrop(box); ok {
		t.Error("Expected drop handed over once")
	}
}

func TestDropFromNonItemboxIgnored(t *testing.T) {
	em, _ := newEnemyManager(constRandom(0.99), nil)
	g, _ := em.Spawn(core.VariantGhost)
	em.Damage(g, 10)
	if g.Drop != core.ItemNone {
		t.Errorf("Expected no drop from ghost, got %s", g.Drop)
	}
	g.Drop = core.ItemMagic
	if _, _, ok := em.TakeDrop(g); ok {
		t.Error("Expected drop from non-itembox ignored")
	}
}

func TestSkeletonFiresEveryTwoSeconds(t *testing.T) {
	audio := &cueRecorder{}
	em, bm := newEnemyManager(constRandom(0.5), audio)
	em.lastSpawn = 1e9
	e, _ := em.Spawn(core.VariantSkeleton)
	e.Pos = mgl64.Vec2{5, 0}

	for i := 0; i < 250; i++ {
		em.Update(0.01, nil)
	}
	if n := len(bm.EnemyBullets()); n != 1 {
		t.Fatalf("Expected one shot after 2.5s, got %d", n)
	}
	b := bm.EnemyBullets()[0]
	if b.Kind != core.BulletEnergy || b.Vel != (mgl64.Vec2{-5, 0}) {
		t.Errorf("Expected straight energy shot, got %+v", b)
	}
	if audio.count(core.CueEnemyAttack) != 1 {
		t.Errorf("Expected enemy_attack cue, got %v", audio.cues)
	}
}

func TestDragonAimKeepsHorizontalSpeed(t *testing.T) {
	em, bm := newEnemyManager(constRandom(0.99), nil)
	e, _ := em.Spawn(core.VariantDragon)
	e.Pos = mgl64.Vec2{4, 0}

	target := fixedTarget{-5, 3}
	for i := 0; i < 105; i++ {
		em.Update(0.01, target)
	}
	if e.Vel[0] != -e.Speed {
		t.Errorf("Expected vx preserved at %v, got %v", -e.Speed, e.Vel[0])
	}
	if e.Vel[1] <= 0 {
		t.Errorf("Expected re-aim upward toward target, got %v", e.Vel)
	}
	if n := len(bm.EnemyBullets()); n != 0 {
		t.Errorf("Expected no shot before 2s, got %d", n)
	}

	for i := 0; i < 100; i++ {
		em.Update(0.01, target)
	}
	bullets := bm.EnemyBullets()
	if len(bullets) != 1 {
		t.Fatalf("Expected one fire shot at 2s, got %d", len(bullets))
	}
	b := bullets[0]
	if b.Kind != core.BulletFire {
		t.Errorf("Expected fire bullet, got %s", b.Kind)
	}
	if b.Vel[0] >= 0 || b.Vel[1] <= 0 {
		t.Errorf("Expected a leftward shot biased up toward the target, got %v", b.Vel)
	}
}

func TestBossSpiral(t *testing.T) {
	em, bm := newEnemyManager(constRandom(0.99), nil)
	boss, _ := em.Spawn(core.VariantBoss)
	boss.Pos[0] = parameter.BossAnchorX

	for i := 0; i < 100; i++ {
		em.Update(0.01, nil)
	}
	n := len(bm.EnemyBullets())
	if n < 4 || n > 5 {
		t.Errorf("Expected about 5 spiral shots in 1s, got %d", n)
	}
	for _, b := range bm.EnemyBullets() {
		if b.Kind != core.BulletNut {
			t.Errorf("Expected nut bullets, got %s", b.Kind)
		}
		if math.Abs(b.Vel.Len()-parameter.BossBulletSpeed) > 1e-6 {
			t.Errorf("Expected speed 2, got %v", b.Vel.Len())
		}
	}
}

func TestDifficultyScalesHP(t *testing.T) {
	bm := NewBulletManager(zerolog.Nop())
	em := NewEnemyManager(bm, nil, constRandom(0.5), 2, zerolog.Nop())
	e, _ := em.Spawn(core.VariantDragon)
	if e.HP != 32 || e.MaxHP != 32 {
		t.Errorf("Expected hp 32 at difficulty 2, got %v", e.HP)
	}
}
