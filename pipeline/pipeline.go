// Package pipeline walks a plume catalog and produces one science raster and
// one quicklook per plume complex and per source scene.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/wgdzlh/plumelib"
	"github.com/wgdzlh/plumelib/catalog"
	"github.com/wgdzlh/plumelib/log"
	"github.com/wgdzlh/plumelib/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	PLUME_PRODUCT = "l2bch4plm"
	SCENE_PRODUCT = "l2bch4enh"

	plumeSourceTemplate = "dcid_%s_mf_ort.tif"
	sceneSourceSuffix   = "_ch4_mf_ort"
	sceneOutSuffix      = "_ch4_enh" + utils.FILE_EXT_TIF
)

type RasterReader interface {
	ReadRaster(tif string) (*plumelib.Raster, error)
}

type ProductWriter interface {
	WriteScience(ctx context.Context, r *plumelib.Raster, tags []plumelib.Tag, out string) error
	WriteQuicklook(q *plumelib.Quicklook, out string) error
}

type Toolbox interface {
	RasterReader
	ProductWriter
}

type Options struct {
	SourceDir    string // 整景正射影像目录
	DestDir      string
	ManualDelDir string // 羽流勾绘所用的dcid正射影像目录
	Workers      int
	Publication  plumelib.PublicationMeta
}

type Kind string

const (
	KindPlume Kind = "plume"
	KindScene Kind = "scene"
)

// 单个条目的处理结果，失败仅影响该条目
type Result struct {
	Kind    Kind
	ID      string
	Outputs []string
	Err     error
	Elapsed time.Duration
}

type Runner struct {
	tb     Toolbox
	opts   Options
	runID  string
	logTag string
}

func NewRunner(tb Toolbox, opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Runner{
		tb:     tb,
		opts:   opts,
		runID:  uuid.NewString(),
		logTag: "Runner:",
	}
}

func (r *Runner) RunID() string {
	return r.runID
}

// 处理单个羽流：输出科学产品tif、快视图png及GeoJSON附属文件；任一步失败则删除已写出的文件
func (r *Runner) ProcessPlume(ctx context.Context, p catalog.Plume) (outputs []string, err error) {
	defer func() {
		if err != nil {
			outputs = r.discard(outputs)
		}
	}()
	if !p.IsPlume() {
		err = errors.Wrapf(catalog.ErrUnsupportedGeometry, "%s has no polygon", p.ID)
		return
	}
	meta, err := p.ProductMeta(r.opts.Publication.ProductVersion)
	if err != nil {
		return
	}
	src, err := r.tb.ReadRaster(filepath.Join(r.opts.ManualDelDir, fmt.Sprintf(plumeSourceTemplate, p.DCID)))
	if err != nil {
		return
	}
	cropped, mask, err := plumelib.ExtractPlume(src, p.Ring)
	if err != nil {
		err = errors.Wrapf(err, "extract plume %s", p.ID)
		return
	}
	log.Info(r.logTag+"extracted plume", zap.String("run", r.runID), zap.String("plume", p.ID),
		zap.Int("rows", cropped.Rows), zap.Int("cols", cropped.Cols), zap.Int("pixels", mask.Count()),
		zap.Stringer("gt", cropped.GeoTransform))

	fid := p.SceneFIDs[0]
	outDir, err := utils.GetDateSubDir(r.opts.DestDir, fid.Date(), PLUME_PRODUCT)
	if err != nil {
		return
	}
	base := filepath.Join(outDir, string(fid)+"_"+p.ID)
	tags := plumelib.MergeTags(meta.Tags(), r.opts.Publication.Tags())
	if outputs, err = r.writeProducts(ctx, cropped, tags, base+utils.FILE_EXT_TIF); err != nil {
		return
	}
	jsonOut := base + utils.FILE_EXT_JSON
	if err = catalog.WritePlumeJSON(p.Feature, jsonOut); err != nil {
		return
	}
	outputs = append(outputs, jsonOut)
	return
}

// 处理整景产品：不裁剪，直接输出科学产品及快视图
func (r *Runner) ProcessScene(ctx context.Context, fid plumelib.SceneFID) (outputs []string, err error) {
	defer func() {
		if err != nil {
			outputs = r.discard(outputs)
		}
	}()
	if err = fid.Validate(); err != nil {
		return
	}
	outDir, err := utils.GetDateSubDir(r.opts.DestDir, fid.Date(), SCENE_PRODUCT)
	if err != nil {
		return
	}
	src, err := r.tb.ReadRaster(filepath.Join(r.opts.SourceDir, fid.Date(), string(fid)+sceneSourceSuffix))
	if err != nil {
		return
	}
	return r.writeProducts(ctx, src, r.opts.Publication.Tags(), filepath.Join(outDir, string(fid)+sceneOutSuffix))
}

// 删除失败条目已写出的文件
func (r *Runner) discard(outputs []string) []string {
	for _, out := range outputs {
		if e := utils.RemoveIfExists(out); e != nil {
			log.Warn(r.logTag+"remove partial output failed", zap.String("run", r.runID), zap.String("out", out), zap.Error(e))
		}
	}
	return nil
}

func (r *Runner) writeProducts(ctx context.Context, ras *plumelib.Raster, tags []plumelib.Tag, tif string) (outputs []string, err error) {
	if err = r.tb.WriteScience(ctx, ras, tags, tif); err != nil {
		return
	}
	outputs = append(outputs, tif)
	q, err := plumelib.Colorize(ras)
	if err != nil {
		return
	}
	png := utils.QuicklookPath(tif)
	if err = r.tb.WriteQuicklook(q, png); err != nil {
		return
	}
	outputs = append(outputs, png)
	return
}

type job struct {
	kind Kind
	id   string
	run  func(ctx context.Context) ([]string, error)
}

// 处理目录中全部羽流面，再处理涉及的全部整景；各条目互不影响
func (r *Runner) Run(ctx context.Context, c *catalog.Catalog) (results []Result) {
	var jobs []job
	for i := 0; i < c.Len(); i++ {
		f := c.Feature(i)
		if !catalog.IsPlume(f) {
			continue
		}
		idx := i
		id := fmt.Sprintf("feature-%d", i)
		if pid, ok := f.Properties[catalog.PROP_PLUME_ID].(string); ok && pid != "" {
			id = pid
		}
		jobs = append(jobs, job{kind: KindPlume, id: id, run: func(ctx context.Context) ([]string, error) {
			p, err := c.Plume(idx)
			if err != nil {
				return nil, err
			}
			return r.ProcessPlume(ctx, p)
		}})
	}
	for _, fid := range c.UniqueSceneFIDs() {
		fid := fid
		jobs = append(jobs, job{kind: KindScene, id: string(fid), run: func(ctx context.Context) ([]string, error) {
			return r.ProcessScene(ctx, fid)
		}})
	}
	log.Info(r.logTag+"start run", zap.String("run", r.runID), zap.Int("jobs", len(jobs)), zap.Int("workers", r.opts.Workers))

	results = make([]Result, len(jobs))
	g := new(errgroup.Group)
	g.SetLimit(r.opts.Workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			results[i] = r.runJob(ctx, j, i+1, len(jobs))
			return nil
		})
	}
	g.Wait()

	failed := len(Failed(results))
	log.Info(r.logTag+"run done", zap.String("run", r.runID), zap.Int("ok", len(results)-failed), zap.Int("failed", failed))
	return
}

func (r *Runner) runJob(ctx context.Context, j job, n, total int) (res Result) {
	res = Result{Kind: j.kind, ID: j.id}
	if res.Err = ctx.Err(); res.Err != nil {
		return
	}
	start := time.Now()
	res.Outputs, res.Err = j.run(ctx)
	res.Elapsed = time.Since(start)
	if res.Err != nil {
		log.Error(r.logTag+"item failed", zap.String("run", r.runID), zap.String("kind", string(j.kind)),
			zap.String("id", j.id), zap.Int("n", n), zap.Int("total", total), zap.Error(res.Err))
		return
	}
	log.Info(r.logTag+"item done", zap.String("run", r.runID), zap.String("kind", string(j.kind)),
		zap.String("id", j.id), zap.Int("n", n), zap.Int("total", total), zap.Duration("elapsed", res.Elapsed))
	return
}

func Failed(results []Result) (ret []Result) {
	for _, res := range results {
		if res.Err != nil {
			ret = append(ret, res)
		}
	}
	return
}
