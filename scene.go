package plumelib

import (
	"fmt"

	"github.com/pkg/errors"
)

// 景标识，形如emit20230813t123456
type SceneFID string

func (f SceneFID) Validate() error {
	if len(f) < 19 || !isDigits(string(f[4:12])) || !isDigits(string(f[13:19])) {
		return errors.Wrapf(ErrInvalidSceneFID, "fid %q", string(f))
	}
	return nil
}

// 采集日期YYYYMMDD
func (f SceneFID) Date() string {
	if f.Validate() != nil {
		return ""
	}
	return string(f[4:12])
}

// 采集时刻HHMMSS
func (f SceneFID) Clock() string {
	if f.Validate() != nil {
		return ""
	}
	return string(f[13:19])
}

// DAAC源景名：EMIT_L2B_CH4ENH_<版本>_<日期>T<时刻>_<轨道>_<景号>
func SourceSceneName(productVersion string, fid SceneFID, orbit, scene string) (name string, err error) {
	if productVersion == "" {
		err = ErrNoProductVersion
		return
	}
	if err = fid.Validate(); err != nil {
		return
	}
	name = fmt.Sprintf("%s_%s_%sT%s_%s_%s", SCENE_PREFIX, productVersion, fid.Date(), fid.Clock(), orbit, scene)
	return
}

func SourceSceneNames(productVersion string, fids []SceneFID, orbit string, scenes []string) (names []string, err error) {
	if len(fids) != len(scenes) {
		err = errors.Wrapf(ErrSceneCountDiffers, "%d fids, %d scenes", len(fids), len(scenes))
		return
	}
	names = make([]string, len(fids))
	for i, fid := range fids {
		if names[i], err = SourceSceneName(productVersion, fid, orbit, scenes[i]); err != nil {
			return
		}
	}
	return
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
