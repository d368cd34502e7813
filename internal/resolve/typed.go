package resolve

import (
	"alias-resolver/internal/model"
)

// GetString resolves name and reads it as a string.
func (r *Resolver) GetString(name string) (string, bool, error) {
	v, ok := r.GetAttribute(name)
	if !ok {
		return "", false, nil
	}

	s, err := v.AsString()

	return s, err == nil, err
}

// GetStrings resolves name and reads it as an array of strings.
func (r *Resolver) GetStrings(name string) ([]string, bool, error) {
	v, ok := r.GetAttribute(name)
	if !ok {
		return nil, false, nil
	}

	ss, err := v.AsStrings()

	return ss, err == nil, err
}

// GetTypeRef resolves name and reads it as a type reference.
func (r *Resolver) GetTypeRef(name string) (model.TypeRef, bool, error) {
	v, ok := r.GetAttribute(name)
	if !ok {
		return "", false, nil
	}

	ref, err := v.AsTypeRef()

	return ref, err == nil, err
}

// GetUniqueString resolves name as a unique value and reads it as a string.
func (r *Resolver) GetUniqueString(name string) (string, bool, error) {
	v, ok, err := r.GetUniqueAttributeValue(name)
	if err != nil || !ok {
		return "", false, err
	}

	s, err := v.AsString()

	return s, err == nil, err
}

// GetUniqueEnum resolves name as a unique value and reads it as an enum.
func (r *Resolver) GetUniqueEnum(name string) (model.EnumValue, bool, error) {
	v, ok, err := r.GetUniqueAttributeValue(name)
	if err != nil || !ok {
		return model.EnumValue{}, false, err
	}

	e, err := v.AsEnum()

	return e, err == nil, err
}
