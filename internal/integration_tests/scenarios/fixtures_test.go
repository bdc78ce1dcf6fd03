package integration_tests

const pom = `<project>
    <modelVersion>4.0.0</modelVersion>
    <groupId>com.example</groupId>
    <artifactId>shop</artifactId>
    <properties>
        <spring-ai.version>1.0.0</spring-ai.version>
    </properties>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
        </dependency>
        <dependency>
            <groupId>org.springframework.ai</groupId>
            <artifactId>spring-ai-starter-mcp-server-webmvc</artifactId>
            <version>${spring-ai.version}</version>
        </dependency>
    </dependencies>
</project>
`

const orderController = `package com.example.shop.web;

import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/orders")
public class OrderController {

    /**
     * Finds an order.
     * Returns {@code null} when absent.
     *
     * @param id the order id
     */
    @GetMapping("/{id}")
    public String find(@PathVariable String id) {
        return id;
    }

    @DeleteMapping("/{id}")
    public void cancel(@PathVariable String id, @RequestParam(required = false) boolean force) {
    }

    private void audit() {
    }
}
`

const orderControllerWant = `package com.example.shop.web;

import org.springframework.ai.tool.annotation.Tool;
import org.springframework.ai.tool.annotation.ToolParam;
import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/orders")
public class OrderController {

    /**
     * Finds an order.
     * Returns {@code null} when absent.
     *
     * @param id the order id
     */
    @GetMapping("/{id}")
    @Tool(description = "Finds an order., Returns null when absent.")
    public String find(@PathVariable @ToolParam(description = "the order id") String id) {
        return id;
    }

    @DeleteMapping("/{id}")
    @Tool(description = "cancel")
    public void cancel(@PathVariable @ToolParam(description = "id") String id, @RequestParam(required = false) @ToolParam(description = "force") boolean force) {
    }

    private void audit() {
    }
}
`

const catalogService = `package com.example.shop.catalog;

import org.springframework.stereotype.Service;
import org.springframework.web.bind.annotation.PostMapping;

@Service
public class CatalogService {

    @PostMapping("/catalog/refresh")
    public int refresh() {
        return 0;
    }
}
`

const catalogServiceWant = `package com.example.shop.catalog;

import org.springframework.ai.tool.annotation.Tool;
import org.springframework.stereotype.Service;
import org.springframework.web.bind.annotation.PostMapping;

@Service
public class CatalogService {

    @PostMapping("/catalog/refresh")
    @Tool(description = "refresh")
    public int refresh() {
        return 0;
    }
}
`

const shopApplication = `package com.example.shop;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class ShopApplication {

    public static void main(String[] args) {
        SpringApplication.run(ShopApplication.class, args);
    }
}
`

const shopApplicationWant = `package com.example.shop;

import com.example.shop.catalog.CatalogService;
import com.example.shop.web.OrderController;
import org.springframework.ai.tool.ToolCallbackProvider;
import org.springframework.ai.tool.method.MethodToolCallbackProvider;
import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;
import org.springframework.context.annotation.Bean;

@SpringBootApplication
public class ShopApplication {

    public static void main(String[] args) {
        SpringApplication.run(ShopApplication.class, args);
    }

    @Bean
    ToolCallbackProvider toolCallbackProvider(CatalogService catalogService, OrderController orderController) {
        return MethodToolCallbackProvider.builder()
                .toolObjects(catalogService, orderController)
                .build();
    }
}
`

const applicationYAML = `server:
  port: 8080
spring:
  application:
    name: shop
`

const applicationYAMLWant = `server:
  port: 8080
spring:
  application:
    name: shop
  ai:
    mcp:
      server:
        name: webmvc-mcp-server
        version: 1.0.0
        type: SYNC
        sse-message-endpoint: /mcp/messages
`

const (
	orderPath   = "src/main/java/com/example/shop/web/OrderController.java"
	catalogPath = "src/main/java/com/example/shop/catalog/CatalogService.java"
	appPath     = "src/main/java/com/example/shop/ShopApplication.java"
	yamlPath    = "src/main/resources/application.yml"
)

func shopProject(descriptorName, descriptor string) map[string]string {
	return map[string]string{
		descriptorName: descriptor,
		orderPath:      orderController,
		catalogPath:    catalogService,
		appPath:        shopApplication,
		yamlPath:       applicationYAML,
	}
}
