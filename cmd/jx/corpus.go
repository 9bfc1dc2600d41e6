// Copyright 2025 easymvp
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

package main

import "github.com/easyagent-dev/jx"

// corpusCase is one fixture in the built-in acceptance corpus, adapted from
// the simple_tests table in the original jxutil test driver.
type corpusCase struct {
	name     string
	json     string
	wantPass bool
}

var corpus = []corpusCase{
	{"empty array", "[]", true},
	{"empty object", "{}", true},
	{"nested arrays", "[[1,2],[3,4]]", true},
	{"object of arrays", `{"a":[1,2],"b":[3,4]}`, true},
	{"mixed types", `[1,"two",3.0,true,false,null,{"k":"v"}]`, true},
	{"whitespace heavy", "[ 1 ,\n\t2 ,\n\t3 ]", true},
	{"unicode object key", `{"π":3.14159}`, true},
	{"four-byte utf8 string", `["😀"]`, true},
	{"literal utf8 string", `["café"]`, true},
	{"unterminated array", "[1,2", false},
	{"unterminated string", `["abc`, false},
	{"bad escape", `["\q"]`, false},
	{"missing colon", `{"a" 1}`, false},
	{"missing comma", `[1 2]`, false},
	{"object key not string", `{1:2}`, false},
	{"scalar root", "3.14", false},
	{"trailing comma array", "[1,]", false},
	{"trailing comma object", `{"a":1,}`, false},
	{"trailing characters", "[1] x", false},
}

// corpusResult is the outcome of checking one corpus case.
type corpusResult struct {
	corpusCase
	pass    bool
	message string
}

func runCorpus() []corpusResult {
	results := make([]corpusResult, 0, len(corpus))
	for _, c := range corpus {
		ctx := jx.NewContext()
		status := ctx.ParseChunk([]byte(c.json))

		pass := status == jx.StatusComplete
		if pass && ctx.GetResult() == nil {
			pass = false
		}

		results = append(results, corpusResult{
			corpusCase: c,
			pass:       pass == c.wantPass,
			message:    ctx.GetErrorMessage(),
		})
	}

	return results
}
