package transforms

import (
	"fmt"
	"reflect"
	"strings"
)

type TransformDefinition struct {
	Type  string                 `yaml:"type"`
	Match map[string]string      `yaml:"match"`
	Data  map[string]interface{} `yaml:"data"`
}

// Transform sets the Data fields on inputValue when its type and every Match field agree.
// Pointer fields are compared by the value they point to, a nil pointer never matches.
func (t *TransformDefinition) Transform(inputTypeOf reflect.Type, inputValue reflect.Value) {
	if !inputValue.IsValid() || inputValue.Kind() != reflect.Struct {
		return
	}

	if t.Type != "" && t.Type != strings.TrimPrefix(inputTypeOf.String(), "*") {
		return
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() {
			return
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				return
			}
			field = field.Elem()
		}

		if value != fieldString(field) {
			return
		}
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || !field.CanSet() {
			continue
		}

		dataValue := reflect.ValueOf(value)
		if !dataValue.IsValid() || dataValue.Kind() != field.Kind() || !dataValue.Type().ConvertibleTo(field.Type()) {
			continue
		}

		field.Set(dataValue.Convert(field.Type()))
	}
}

func fieldString(field reflect.Value) string {
	if field.Kind() == reflect.String {
		return field.String()
	}

	return fmt.Sprint(field.Interface())
}

// Transform applies the registered definitions to a pointer to a record, or to every
// element of a slice of them, descending into nested records and slices
func Transform(input interface{}) {
	inputTypeOf := reflect.TypeOf(input)
	if inputTypeOf == nil {
		return
	}
	inputValueOf := reflect.ValueOf(input)

	if inputTypeOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			indexInput := inputValueOf.Index(i).Interface()
			transformValue(reflect.TypeOf(indexInput), reflect.ValueOf(indexInput))
		}
	} else {
		transformValue(inputTypeOf, inputValueOf)
	}
}

func transformValue(inputTypeOf reflect.Type, inputValueOf reflect.Value) {
	if inputTypeOf == nil || inputTypeOf.Kind() != reflect.Pointer || inputValueOf.IsNil() {
		return
	}

	inputValue := inputValueOf.Elem()
	if inputValue.Kind() != reflect.Struct {
		return
	}

	for _, transformDef := range transforms {
		transformDef.Transform(inputTypeOf, inputValue)
	}

	for i := 0; i < inputValue.NumField(); i++ {
		valueField := inputValue.Field(i)
		typeField := inputValue.Type().Field(i)

		if !typeField.IsExported() {
			continue
		}

		switch typeField.Type.Kind() {
		case reflect.Slice:
			Transform(valueField.Interface())
		case reflect.Pointer:
			if valueField.IsNil() || valueField.Elem().Kind() != reflect.Struct {
				continue
			}
			if typeField.Type.Elem().PkgPath() == "time" {
				continue
			}
			transformValue(typeField.Type, valueField)
		}
	}
}
