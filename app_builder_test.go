package learngl

import "testing"

type MockModule struct {
	installed bool
	order     *[]string
	name      string
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
}

func TestAppBuilder_Build(t *testing.T) {
	builder := NewAppBuilder()
	app := builder.Build()

	if len(app.stages) != len(defaultStages) {
		t.Errorf("Expected %d stages, got %v", len(defaultStages), len(app.stages))
	}
	if len(app.modules) != 0 {
		t.Errorf("Expected no modules, got %v", len(app.modules))
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Install should wait for Build")
	}
}

func TestAppBuilder_Build_WithMultipleModules(t *testing.T) {
	var order []string
	module1 := &MockModule{order: &order, name: "one"}
	module2 := &MockModule{order: &order, name: "two"}

	builder := NewAppBuilder()
	builder.UseModule(module1)
	builder.UseModule(module2)

	app := builder.Build()

	if len(app.modules) != 2 {
		t.Errorf("Expected 2 modules, got %v", len(app.modules))
	}
	if !module1.installed {
		t.Errorf("Expected Install to be called on the module 1, but it was not")
	}
	if !module2.installed {
		t.Errorf("Expected Install to be called on the module 2, but it was not")
	}
	if len(order) != 2 || order[0] != "one" || order[1] != "two" {
		t.Errorf("Expected modules installed in order, got %v", order)
	}
}
