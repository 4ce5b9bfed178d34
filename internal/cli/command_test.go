package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafCommandBuild(t *testing.T) {
	cmd := LeafCommand{
		Use:   "test",
		Short: "A test command",
		Long:  "A longer description",
		Args:  cobra.ExactArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "copy", Usage: "copy the result", Default: false},
			{Name: "bom", Usage: "write a BOM", Default: true},
		},
		StrFlags: []StringFlag{
			{Name: "output", Usage: "output file", Default: "out.csv"},
		},
		IntFlags: []IntFlag{
			{Name: "random", Usage: "pick K days", Default: 5},
		},
		ArrayFlags: []StringArrayFlag{
			{Name: "group", Usage: "NAME=a,b"},
		},
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "test", cmd.Use)
	assert.Equal(t, "A test command", cmd.Short)
	assert.Equal(t, "A longer description", cmd.Long)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	copyFlag := cmd.Flags().Lookup("copy")
	require.NotNil(t, copyFlag)
	assert.Equal(t, "false", copyFlag.DefValue)

	bom := cmd.Flags().Lookup("bom")
	require.NotNil(t, bom)
	assert.Equal(t, "true", bom.DefValue)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "out.csv", output.DefValue)

	random := cmd.Flags().Lookup("random")
	require.NotNil(t, random)
	assert.Equal(t, "5", random.DefValue)

	require.NoError(t, cmd.Flags().Set("group", "size=s,m"))
	require.NoError(t, cmd.Flags().Set("group", "flag=yes,no"))
	groups, err := cmd.Flags().GetStringArray("group")
	require.NoError(t, err)
	assert.Equal(t, []string{"size=s,m", "flag=yes,no"}, groups)
}

func TestLeafCommandBuildNoFlags(t *testing.T) {
	cmd := LeafCommand{
		Use:   "simple",
		Short: "A simple command",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "simple", cmd.Use)
	assert.False(t, cmd.HasFlags())
}

func TestGroupCommandBuild(t *testing.T) {
	sub1 := &cobra.Command{Use: "sub1"}
	sub2 := &cobra.Command{Use: "sub2"}

	cmd := GroupCommand{
		Use:         "group",
		Short:       "A group command",
		Subcommands: []*cobra.Command{sub1, sub2},
	}.Build()

	assert.Equal(t, "group", cmd.Use)
	assert.Nil(t, cmd.RunE)
	assert.Len(t, cmd.Commands(), 2)
}
