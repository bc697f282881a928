// Copyright (c) 2021 The Plume Authors. All rights reserved.
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

/*
Package plume is the official Go client for the Plume key-value database.

A connection is established from a Config and queries are run over it:

	cfg := plume.DefaultConfig("user", "pass")
	db, err := plume.Dial(cfg)
	if err != nil {
		// ...
	}
	defer db.Close()

	res, err := db.Run(plume.NewQuery("heya"))
	if err != nil {
		// ...
	}
	if res.Kind == plume.Item {
		fmt.Println(res.Item.Str) // "HEY!"
	}

Multiple queries can be sent in one round trip with a Pipeline, in which case
the server answers with one response holding a datagroup per query:

	p := plume.NewPipeline().
		Add(plume.NewQuery("set", "x", "100")).
		Add(plume.NewQuery("get", "x"))
	res, err := db.RunPipeline(p)

The wire-level response decoder lives in the protocol subpackage and is usable
on its own for anyone bringing their own transport.
*/
package plume
