//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"kwx/internal/adapter/analyzer"
	"kwx/internal/adapter/markdown"
	"kwx/internal/usecase"
)

var analyze *usecase.AnalyzeUseCase

func init() {
	tokenizer := analyzer.NewLazyMorphTokenizer(analyzer.Options{})
	extractor := usecase.NewKeywordExtractor(tokenizer, nil)
	analyze = usecase.NewAnalyzeUseCase(markdown.NewReducer(), extractor)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("kwxExtract", js.FuncOf(extractKeywords))
	js.Global().Set("kwxStrip", js.FuncOf(stripMarkdown))

	<-c
}

func extractKeywords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: kwxExtract(markdown, [maxKeywords])")
	}

	doc := args[0].String()
	maxKeywords := usecase.DefaultMaxKeywords
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		maxKeywords = args[1].Int()
	}

	result, err := analyze.Analyze(doc, maxKeywords)
	if err != nil {
		return makeError("extraction failed: " + err.Error())
	}

	return makeResult(result)
}

func stripMarkdown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: kwxStrip(markdown)")
	}
	return analyze.Strip(args[0].String())
}

func makeResult(data interface{}) interface{} {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return makeError("json encoding failed: " + err.Error())
	}
	return string(jsonBytes)
}

func makeError(msg string) interface{} {
	result := map[string]interface{}{
		"error": msg,
	}
	jsonBytes, _ := json.Marshal(result)
	return string(jsonBytes)
}
