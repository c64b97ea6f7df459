// Copyright 2023 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testsetup is the common bootstrap for package tests.
package testsetup

import (
	"github.com/pingcap/decimal/pkg/util/logutil"
)

// SetupForCommonTest runs before the tests of every package. It quiets the
// global logger so test output only carries failures.
func SetupForCommonTest() {
	cfg := logutil.NewLogConfig("fatal", logutil.DefaultLogFormat, logutil.FileLogConfig{}, true)
	_ = logutil.InitLogger(cfg)
}
