package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/pkg/lox"
)

type node struct {
	name     string
	children []node
}

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	out, err := lox.MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2, 3}, out)

	out, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Error(err)
	rq.Nil(out)
}

func TestSumErr(t *testing.T) {
	rq := require.New(t)
	errBoom := errors.New("boom")

	sum, err := lox.SumErr([]int64{100, 110, 90, 95}, func(v int64) (int64, error) { return v, nil })
	rq.NoError(err)
	rq.Equal(int64(395), sum)

	sum, err = lox.SumErr([]int64(nil), func(v int64) (int64, error) { return v, nil })
	rq.NoError(err)
	rq.Zero(sum)

	_, err = lox.SumErr([]int64{1, 2}, func(v int64) (int64, error) {
		if v == 2 {
			return 0, errBoom
		}

		return v, nil
	})
	rq.ErrorIs(err, errBoom)
}

func TestWalk(t *testing.T) {
	rq := require.New(t)

	tree := []node{
		{name: "a", children: []node{{name: "a1", children: []node{{name: "a1x"}}}, {name: "a2"}}},
		{name: "b"},
	}

	var visited []string

	err := lox.Walk(tree, func(n node) []node { return n.children }, func(n node) error {
		visited = append(visited, n.name)
		return nil
	})
	rq.NoError(err)
	rq.Equal([]string{"a", "a1", "a1x", "a2", "b"}, visited)

	errStop := errors.New("stop")
	err = lox.Walk(tree, func(n node) []node { return n.children }, func(n node) error {
		if n.name == "a2" {
			return errStop
		}
		return nil
	})
	rq.ErrorIs(err, errStop)
}
