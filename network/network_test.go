package network_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netresil/graphio"
	"github.com/katalvlaran/netresil/network"
)

func TestAttachmentEdges(t *testing.T) {
	require.Equal(t, 2, network.AttachmentEdges(100, 0.04))
	require.Equal(t, 1, network.AttachmentEdges(10, 0.04))
	require.Equal(t, 5, network.AttachmentEdges(100, 0.1))
}

func TestGenerate(t *testing.T) {
	er, err := network.Generate(network.KindER, 100, 0.04, 102)
	require.NoError(t, err)
	require.Equal(t, 100, er.VertexCount())

	again, err := network.Generate(network.KindER, 100, 0.04, 102)
	require.NoError(t, err)
	require.Equal(t, er.EdgeCount(), again.EdgeCount())

	sf, err := network.Generate(network.KindSF, 100, 0.04, 102)
	require.NoError(t, err)
	require.Equal(t, 2*(100-2), sf.EdgeCount())

	_, err = network.Generate(network.KindAirports, 10, 0.1, 1)
	require.ErrorIs(t, err, network.ErrUnknownKind)
}

func TestBuild(t *testing.T) {
	pair, err := network.Build(network.Spec{Kind: network.KindERSF, N: 50, P: 0.1, Seed: 7})
	require.NoError(t, err)
	require.Len(t, pair, 2)
	require.Equal(t, "ER", pair[0].Name)
	require.Equal(t, "SF", pair[1].Name)

	_, err = network.Build(network.Spec{Kind: network.KindAirports})
	require.ErrorIs(t, err, network.ErrMissingEdgeList)

	_, err = network.Build(network.Spec{Kind: "WS"})
	require.ErrorIs(t, err, network.ErrUnknownKind)

	path := filepath.Join(t.TempDir(), "routes.csv")
	require.NoError(t, os.WriteFile(path, []byte("src,dst\nA,B\nB,C\n"), 0o600))
	ds, err := network.Build(network.Spec{
		Kind:     network.KindAirports,
		EdgeList: path,
		ReadOpts: []graphio.Option{graphio.WithComma(','), graphio.WithHeaderColumns("src", "dst")},
	})
	require.NoError(t, err)
	require.Len(t, ds, 1)
	require.Equal(t, 3, ds[0].Graph.VertexCount())
	require.Equal(t, 2, ds[0].Report.Edges)
}
