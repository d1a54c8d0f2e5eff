// Package jayson provides schema-driven operations over JSON documents:
//
// - Validate data against a JSON Schema subset with a stable error model (path, code, message)
// - Infer a schema from one example document
// - Generate an example document from a schema
// - Summarize a schema (Describe)
//
// Code generation lives in codegen/, record transformation in transform/, the
// schema model in jsonschema/ and the JSON value model in value/. HTTP
// request validation is in middleware/, the command-line tool in cmd/jayson.
//
// Design policy:
// - Every operation is a pure function of its inputs; nothing is cached between calls.
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - The *JSON functions are the text boundary: they never panic and report failures in-band.
//
// Typical usage:
//
//	res := jayson.ValidateJSON(schemaText, dataText, jayson.ValidateOpt{})
//	doc := jayson.InferSchemaJSON(dataText, "User", true)
//	tpl := jayson.GenerateTemplateJSON(schemaText, jayson.TemplateOpt{IncludeOptional: true})
package jayson
