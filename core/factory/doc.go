// Package factory provides a small generic registry used to build pluggable
// modules, such as metrics sinks, from configuration. A module is described
// by a type name and a map of raw settings which its factory decodes into a
// typed struct.
//
//	reg := factory.NewRegistry[metrics.MetricsSink]()
//	_ = reg.Register("influx", func(conf map[string]any) (metrics.MetricsSink, error) {
//	    var c struct{ URL string `json:"url"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newInfluxSink(c.URL), nil
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "influx", Conf: map[string]any{"url": "http://influx:8086"}})
package factory
