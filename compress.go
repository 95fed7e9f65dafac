package plumelib

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/wgdzlh/plumelib/log"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 压缩/重切片协作方：读取src，输出最终文件dst
// 调用方负责src的清理
type Compressor interface {
	Compress(ctx context.Context, src, dst string) error
}

type CompressorFunc func(ctx context.Context, src, dst string) error

func (f CompressorFunc) Compress(ctx context.Context, src, dst string) error {
	return f(ctx, src, dst)
}

// 调用外部脚本：sh <Script> <src> <dst>
type ShellCompressor struct {
	Shell  string
	Script string
}

func NewShellCompressor(script string) *ShellCompressor {
	return &ShellCompressor{Shell: "sh", Script: script}
}

func (s *ShellCompressor) Compress(ctx context.Context, src, dst string) (err error) {
	shell := s.Shell
	if shell == "" {
		shell = "sh"
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, shell, s.Script, src, dst)
	cmd.Stderr = &stderr
	log.Debug("ShellCompressor:run", zap.String("script", s.Script), zap.String("src", src), zap.String("dst", dst))
	if err = cmd.Run(); err != nil {
		log.Error("ShellCompressor:script failed", zap.String("script", s.Script), zap.String("stderr", stderr.String()), zap.Error(err))
		err = errors.Wrapf(err, "run %s", s.Script)
	}
	return
}
