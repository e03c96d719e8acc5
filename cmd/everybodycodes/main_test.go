package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging_RegistersFlags(t *testing.T) {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	require.NoError(t, initLogging(fset))

	f := fset.Lookup("logtostderr")
	require.NotNil(t, f)
	assert.Equal(t, "true", f.Value.String())
	assert.NotNil(t, fset.Lookup("v"))

	cmd := newRootCmd(registry())
	cmd.PersistentFlags().AddGoFlagSet(fset)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("v"))
}
