// SPDX-License-Identifier: MPL-2.0

package jvm

import "testing"

func TestProperties_InsertionOrder(t *testing.T) {
	t.Parallel()

	props := NewProperties()
	props.Set("c", "3")
	props.Set("a", "1")
	props.Set("b", "2")

	pairs := props.Pairs()
	expected := []Property{{"c", "3"}, {"a", "1"}, {"b", "2"}}

	if len(pairs) != len(expected) {
		t.Fatalf("len(Pairs()) = %d, want %d", len(pairs), len(expected))
	}
	for i, pair := range pairs {
		if pair != expected[i] {
			t.Errorf("Pairs()[%d] = %v, want %v", i, pair, expected[i])
		}
	}
}

func TestProperties_SetExistingKeepsPosition(t *testing.T) {
	t.Parallel()

	props := NewProperties()
	props.Set("first", "1")
	props.Set("second", "2")
	props.Set("first", "updated")

	pairs := props.Pairs()
	if pairs[0].Key != "first" || pairs[0].Value != "updated" {
		t.Errorf("Pairs()[0] = %v, want {first updated}", pairs[0])
	}
	if props.Len() != 2 {
		t.Errorf("Len() = %d, want 2", props.Len())
	}
}

func TestProperties_Delete(t *testing.T) {
	t.Parallel()

	props := NewProperties()
	props.Set("a", "1")
	props.Set("b", "2")
	props.Set("c", "3")

	props.Delete("b")
	props.Delete("absent") // no-op

	if props.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", props.Len())
	}
	if _, ok := props.Get("b"); ok {
		t.Error("Get(b) found a deleted key")
	}

	pairs := props.Pairs()
	if pairs[0].Key != "a" || pairs[1].Key != "c" {
		t.Errorf("Pairs() order after delete = %v, want [a c]", pairs)
	}
}

func TestProperties_PairsIsACopy(t *testing.T) {
	t.Parallel()

	props := NewProperties()
	props.Set("key", "value")

	pairs := props.Pairs()
	pairs[0].Value = "mutated"

	if got, _ := props.Get("key"); got != "value" {
		t.Errorf("Get(key) = %q after mutating Pairs() copy, want %q", got, "value")
	}
}
