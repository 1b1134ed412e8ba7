// Package analysis answers questions about the language of a DFA by searching its state graph.
package analysis

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
)

// IsEmpty reports whether def accepts no word at all.
// The error wraps domain.ErrInvalidAutomaton when def is malformed. def is never modified.
func IsEmpty(def domain.Definition) (bool, error) {
	dfa, err := schema.Intern(def)
	if err != nil {
		return false, fmt.Errorf("emptiness: %w", err)
	}
	return Empty(dfa), nil
}

// Empty reports whether no accept state is reachable from the start state.
// The search is breadth-first and stops at the first accept state it dequeues.
func Empty(dfa *domain.DFA) bool {
	if !dfa.HasAccept() {
		return true
	}

	visited := make([]bool, len(dfa.States))
	visited[dfa.Start] = true
	queue := []int{dfa.Start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if dfa.IsAccept(current) {
			return false
		}

		for a := range dfa.Alphabet {
			next := dfa.Next(current, a)
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return true
}

// Reachable returns the states reachable from the start state in breadth-first order.
func Reachable(dfa *domain.DFA) []int {
	visited := make([]bool, len(dfa.States))
	visited[dfa.Start] = true
	order := []int{dfa.Start}

	for i := 0; i < len(order); i++ {
		for a := range dfa.Alphabet {
			next := dfa.Next(order[i], a)
			if !visited[next] {
				visited[next] = true
				order = append(order, next)
			}
		}
	}
	return order
}

// Witness returns a shortest word accepted by dfa, or false when the language is empty.
// Among words of equal length, the one that comes first in alphabet order wins.
func Witness(dfa *domain.DFA) ([]string, bool) {
	const none = -1

	parent := make([]int, len(dfa.States))
	via := make([]int, len(dfa.States))
	for i := range parent {
		parent[i] = none
	}
	visited := make([]bool, len(dfa.States))
	visited[dfa.Start] = true
	queue := []int{dfa.Start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if dfa.IsAccept(current) {
			var word []string
			for s := current; s != dfa.Start; s = parent[s] {
				word = append(word, dfa.Alphabet[via[s]])
			}
			slices.Reverse(word)
			if word == nil {
				word = []string{}
			}
			return word, true
		}

		for a := range dfa.Alphabet {
			next := dfa.Next(current, a)
			if !visited[next] {
				visited[next] = true
				parent[next] = current
				via[next] = a
				queue = append(queue, next)
			}
		}
	}

	return nil, false
}
