package checkin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderQR(t *testing.T) {
	png, err := RenderQR("https://club.example/profile?check-in=abc", MemberQRWidth)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
