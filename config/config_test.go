/*
 * flintc - a compiler for the Flint smart-contract language
 *
 * Copyright the Flint Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "flintc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Reject, cfg.Collections)
}

func TestLoadCollapsePolicy(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flintc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collections: collapse\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Collapse, cfg.Collections)
}

func TestLoadUnknownPolicyIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flintc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collections: nonsense\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
