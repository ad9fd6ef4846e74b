/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package zklog_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/internal/zklog"
)

func TestNamedAddsComponentField(t *testing.T) {
	var buf bytes.Buffer
	zklog.SetOutput(&buf)
	defer zklog.SetOutput(os.Stderr)

	logger := zklog.Named("test-component")
	logger.Info().Msg("hello")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "test-component", record["component"])
	require.Equal(t, "hello", record["message"])
}

func TestSetLevelSuppressesBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	zklog.SetOutput(&buf)
	zklog.SetLevel(zerolog.WarnLevel)
	defer func() {
		zklog.SetLevel(zerolog.InfoLevel)
		zklog.SetOutput(os.Stderr)
	}()

	logger := zklog.Named("test-component")

	logger.Info().Msg("should be dropped")
	require.Empty(t, buf.Bytes())

	logger.Warn().Msg("should appear")
	require.NotEmpty(t, buf.Bytes())
}
