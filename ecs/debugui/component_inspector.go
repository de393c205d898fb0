package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spawnfield/ecs"
)

// FieldLine is one exported field of a component rendered as text
type FieldLine struct {
	Name  string
	Value string
}

func (ci *ComponentInspector) Render(storage *ecs.Storage, id ecs.EntityId, selected bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !selected {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}
	if !storage.Alive(id) {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", id))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", id))
	imgui.Text(fmt.Sprintf("Archetype: 0x%X", id.ArchetypeId()))
	imgui.Separator()

	for _, archetype := range storage.Archetypes() {
		if archetype.ID() != id.ArchetypeId() {
			continue
		}
		for _, t := range archetype.Types() {
			if !imgui.TreeNodeStr(t.String()) {
				continue
			}
			for _, line := range describeComponent(storage.GetComponent(id, t)) {
				imgui.BulletText(fmt.Sprintf("%s: %s", line.Name, line.Value))
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

// describeComponent lists the exported fields of a component pointer. Non-struct
// components come back as a single "value" line.
func describeComponent(component any) []FieldLine {
	if component == nil {
		return nil
	}
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []FieldLine{{Name: "value", Value: fmt.Sprint(val.Interface())}}
	}

	t := val.Type()
	lines := make([]FieldLine, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		lines = append(lines, FieldLine{Name: field.Name, Value: formatValue(val.Field(i))})
	}
	return lines
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", v.Float())
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		if v.Kind() == reflect.Pointer {
			if named, ok := v.Interface().(interface{ String() string }); ok {
				return named.String()
			}
			return v.Type().String()
		}
		return v.Type().String()
	}
	return fmt.Sprint(v.Interface())
}
