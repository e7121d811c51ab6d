package ecs

import "testing"

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留
	if id1 != 1 || id1 == InvalidEntity {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})
	AddComponent(em, id, &testVelocityComponent{VX: 3})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}
	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok || vel.VX != 3 {
		t.Fatalf("GetComponent[*testVelocityComponent] = %v, %v", vel, ok)
	}

	// 修改指针组件后再次读取应看到新值
	pos.X = 42
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 42 {
		t.Errorf("expected mutation through pointer to persist, got %f", again.X)
	}

	// 同类型组件覆盖
	AddComponent(em, id, &testPositionComponent{X: 7})
	if replaced, _ := GetComponent[*testPositionComponent](em, id); replaced.X != 7 {
		t.Errorf("AddComponent should replace same-typed component, got %f", replaced.X)
	}
}

func TestGetComponentMissingEntity(t *testing.T) {
	em := NewEntityManager()

	if _, ok := GetComponent[*testPositionComponent](em, 99); ok {
		t.Error("GetComponent on unknown entity should fail")
	}

	// 向不存在的实体添加组件是空操作
	AddComponent(em, 99, &testPositionComponent{})
	if _, ok := GetComponent[*testPositionComponent](em, 99); ok {
		t.Error("AddComponent on unknown entity should not create it")
	}
	if em.IsAlive(99) {
		t.Error("unknown entity should not be alive")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记不应重复入队

	// 清理前组件仍可访问，但实体不再视为存活
	if _, ok := GetComponent[*testPositionComponent](em, id); !ok {
		t.Error("Entity should still exist before cleanup")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}

	em.RemoveMarkedEntities()
	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("Entity should be removed after cleanup")
	}
	if len(em.entitiesToDestroy) != 0 {
		t.Errorf("destroy queue not cleared: %v", em.entitiesToDestroy)
	}
}

func TestGetEntitiesWith2(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})
	AddComponent(em, id3, &testPositionComponent{})

	// 结果按 ID 升序
	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 2 || both[0] != id1 || both[1] != id3 {
		t.Errorf("Expected [id1 id3] with both components, got %v", both)
	}

	// 已标记的实体在清理前仍会被查到
	em.DestroyEntity(id1)
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 2 {
		t.Errorf("before cleanup got %v, want 2 entities", got)
	}
	em.RemoveMarkedEntities()
	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != id3 {
		t.Errorf("after cleanup got %v, want [id3]", got)
	}
}
