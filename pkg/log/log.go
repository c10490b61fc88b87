// Package log 提供全局 logrus 日志，默认丢弃输出，避免干扰终端界面。
package log

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		DisableColors:   true,
	})
	return l
}

// GetLogger 获取全局 logger
func GetLogger() *logrus.Logger {
	return logger
}

// SetLogLevel 设置日志级别
func SetLogLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput 设置日志输出
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetOutputFile 将日志写入文件，按大小滚动
func SetOutputFile(path string) {
	logger.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}

// Close 关闭文件输出，其他输出不受影响
func Close() error {
	if w, ok := logger.Out.(*lumberjack.Logger); ok {
		return w.Close()
	}
	return nil
}
