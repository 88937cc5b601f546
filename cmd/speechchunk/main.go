package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/observability"

	"github.com/xaionaro-go/speechchunker/pkg/preprocess"
	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "speechchunk.yaml", "path to the processing config")
	mode := pflag.String("mode", "chunk", "processing mode: 'chunk' or 'extract'")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pflag.Parse()

	if pflag.NArg() != 2 {
		panic(fmt.Errorf("expected exactly two arguments: <input-file> <output-dir>"))
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(ctx context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	cfg, err := loadConfig(*configPath)
	assertNoError(err)

	p, err := preprocess.New(ctx, preprocess.Options{
		Sensitivity: vad.Sensitivity(cfg.Sensitivity),
		RequireVAD:  cfg.RequireVAD,
		Segment:     cfg.segmentConfig(),
		Chunk:       cfg.chunkConfig(),
	})
	assertNoError(err)
	defer p.Close()

	input, err := p.LoadFile(ctx, pflag.Arg(0))
	assertNoError(err)

	outputDir := pflag.Arg(1)
	assertNoError(os.MkdirAll(outputDir, 0750))

	switch *mode {
	case "chunk":
		result, err := p.ProcessForChunking(ctx, input, nil)
		assertNoError(err)
		var written uint64
		for _, c := range result.Chunks {
			path := filepath.Join(outputDir, fmt.Sprintf("chunk_%03d.wav", c.ID))
			f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0640)
			assertNoError(err)
			counter := datacounter.NewWriterCounter(f)
			_, err = counter.Write(c.Data)
			assertNoError(err)
			assertNoError(f.Close())
			written += counter.Count()
			logger.Infof(ctx, "%s -> %s (overlap:%v)", c, path, c.HasOverlap)
		}
		logger.Infof(ctx, "wrote %d chunks (%d bytes), speech ratio %.2f",
			len(result.Chunks), written, result.Statistics.SpeechRatio)
	case "extract":
		wav, stats, err := p.ExtractSpeech(ctx, input, nil)
		assertNoError(err)
		path := filepath.Join(outputDir, "speech.wav")
		assertNoError(os.WriteFile(path, wav, 0640))
		logger.Infof(ctx, "wrote %s: %d segments, speech ratio %.2f",
			path, stats.TotalSegments, stats.SpeechRatio)
	default:
		panic(fmt.Errorf("unknown mode %q", *mode))
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
