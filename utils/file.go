package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	FILE_EXT_TIF  = ".tif"
	FILE_EXT_PNG  = ".png"
	FILE_EXT_JSON = ".json"
	TMP_SUFFIX    = "_tmp"
)

// 按日期及产品类型创建输出子目录，如 <parent>/20230813/l2bch4plm
func GetDateSubDir(parentPath, date, product string) (path string, err error) {
	path = filepath.Join(parentPath, date, product)
	err = os.MkdirAll(path, os.ModePerm)
	return
}

func TrimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// 压缩前的临时tif路径：<去扩展名的out>_tmp.tif
func TmpPath(out string) string {
	return TrimExt(out) + TMP_SUFFIX + FILE_EXT_TIF
}

// 科学产品对应的快视图路径
func QuicklookPath(tif string) string {
	return TrimExt(tif) + FILE_EXT_PNG
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// 删除文件，不存在时不报错
func RemoveIfExists(path string) (err error) {
	if err = os.Remove(path); os.IsNotExist(err) {
		err = nil
	}
	return
}

func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return
	}
	err = out.Close()
	return
}
