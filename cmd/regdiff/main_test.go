package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/domain"
)

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"ted", "pair", "version", "init"} {
		assert.True(t, names[expected], "missing %s subcommand", expected)
	}
}

func TestTEDCommandFlags(t *testing.T) {
	cmd := NewTEDCmd()

	for _, flag := range []string{"format", "preset", "simple", "zhang-shasha", "klein", "rted", "max-tree-size", "cost-model", "events", "sort", "config"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing --%s", flag)
	}
}

func TestParseOutputFormat(t *testing.T) {
	format, err := parseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, format)

	format, err = parseOutputFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatYAML, format)

	_, err = parseOutputFormat("xml")
	assert.Error(t, err)
}

func TestParseSortCriteria(t *testing.T) {
	criteria, err := parseSortCriteria("distance")
	require.NoError(t, err)
	assert.Equal(t, domain.SortByDistance, criteria)

	_, err = parseSortCriteria("color")
	assert.Error(t, err)
}

func TestExplicitAlgorithms(t *testing.T) {
	cmd := NewTEDCommand()
	assert.Nil(t, cmd.explicitAlgorithms())

	cmd.zhangShasha = true
	cmd.rted = true
	assert.Equal(t, []domain.Algorithm{domain.AlgorithmZhangShasha, domain.AlgorithmRTED}, cmd.explicitAlgorithms())
}
