package logger

import (
	"testing"

	"github.com/warp-contracts/gridclient/src/utils/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	conf := config.Default()
	require.Nil(t, Init(conf))
	require.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	conf.LogFormat = "json"
	conf.LogLevel = "debug"
	require.Nil(t, Init(conf))
	require.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())

	conf.LogFormat = "xml"
	require.NotNil(t, Init(conf))

	conf.LogLevel = "loud"
	require.NotNil(t, Init(conf))

	require.Equal(t, "grid.twin", NewSublogger("twin").Data["module"])
}
