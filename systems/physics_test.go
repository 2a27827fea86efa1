package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/systems/factory"
	"github.com/automoto/piratecove/tags"
)

func TestStepVerticalRestsOnFloor(t *testing.T) {
	tw := newTestWorld(t)
	// Feet 100px above the floor.
	player := factory.CreatePlayer(tw.ecs, 200, floorTop-100)
	body := components.Body.Get(player)
	obj := components.Object.Get(player)

	for range 120 {
		StepVertical(body, obj)
	}

	assert.True(t, body.OnGround)
	assert.Zero(t, body.Velocity.Y)
	assert.Zero(t, body.JumpCount)
	assert.InDelta(t, floorTop, obj.Rect().Bottom(), 0.001)

	// Standing still keeps it there.
	for range 30 {
		StepVertical(body, obj)
		require.True(t, body.OnGround)
	}
	assert.InDelta(t, floorTop, obj.Rect().Bottom(), 0.001)
}

func TestStepVerticalCeiling(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateObstacle(tw.ecs, gamemath.NewRect(0, 300, testWidth, testTile))
	player := tw.spawnPlayer(100)
	body := components.Body.Get(player)
	obj := components.Object.Get(player)

	body.Velocity.Y = -20
	StepVertical(body, obj)

	assert.InDelta(t, 300+testTile, obj.Rect().Top(), 0.001)
	assert.Zero(t, body.Velocity.Y)
	assert.False(t, body.OnGround)
}

func TestJumpBudget(t *testing.T) {
	tw := newTestWorld(t)
	body := components.Body.Get(tw.spawnPlayer(100))

	require.True(t, Jump(body))
	assert.Equal(t, cfg.Player.JumpImpulses[0], body.Velocity.Y)
	require.True(t, Jump(body))
	assert.Equal(t, cfg.Player.JumpImpulses[1], body.Velocity.Y)
	assert.False(t, Jump(body))
	assert.Equal(t, 2, body.JumpCount)
}

func TestStepHorizontal(t *testing.T) {
	tests := []struct {
		name    string
		dx      float64
		contact float64
		edge    func(r gamemath.Rect) float64
		want    float64
	}{
		{
			name:    "wall on the right",
			dx:      3,
			contact: cfg.DirectionRight,
			edge:    func(r gamemath.Rect) float64 { return r.Right() },
			want:    300,
		},
		{
			name:    "wall on the left",
			dx:      -3,
			contact: cfg.DirectionLeft,
			edge:    func(r gamemath.Rect) float64 { return r.Left() },
			want:    100 + testTile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			factory.CreateObstacle(tw.ecs, gamemath.NewRect(300, 0, testTile, floorTop))
			factory.CreateObstacle(tw.ecs, gamemath.NewRect(100, 0, testTile, floorTop))
			player := tw.spawnPlayer(200)
			body := components.Body.Get(player)
			obj := components.Object.Get(player)

			var contact float64
			for range 60 {
				if c := StepHorizontal(body, obj, tt.dx); c != 0 {
					contact = c
				}
			}
			assert.Equal(t, tt.contact, contact)
			assert.InDelta(t, tt.want, tt.edge(obj.Rect()), 0.001)
		})
	}
}

func TestRedConstraintBlocksEnemiesOnly(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateConstraint(tw.ecs, gamemath.NewRect(300, 0, testTile, floorTop), tags.ResolvRed)

	enemy := tw.spawnEnemy(leveldata.EnemyFierceTooth, 1, 200)
	player := tw.spawnPlayer(200)

	enemyBody, enemyObj := components.Body.Get(enemy), components.Object.Get(enemy)
	playerBody, playerObj := components.Body.Get(player), components.Object.Get(player)
	for range 60 {
		StepHorizontal(enemyBody, enemyObj, 3)
		StepHorizontal(playerBody, playerObj, 3)
	}

	assert.InDelta(t, 300, enemyObj.Rect().Right(), 0.001)
	assert.Greater(t, playerObj.Rect().Left(), 300.0)
}
