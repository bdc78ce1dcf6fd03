package engine

const pomWithStarter = `<project>
    <groupId>com.atbug.rewrite</groupId>
    <artifactId>web-to-mcp</artifactId>
    <version>1.0-SNAPSHOT</version>
    <dependencies>
        <dependency>
            <groupId>org.springframework.ai</groupId>
            <artifactId>spring-ai-starter-mcp-server-webmvc</artifactId>
            <version>1.0.0-SNAPSHOT</version>
        </dependency>
    </dependencies>
</project>
`

const pomWithoutStarter = `<project>
    <groupId>com.atbug.rewrite</groupId>
    <artifactId>web-to-mcp</artifactId>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
        </dependency>
    </dependencies>
</project>
`

const gradleWithStarter = `plugins {
    id 'org.springframework.boot' version '3.4.0'
}

dependencies {
    implementation 'org.springframework.boot:spring-boot-starter-web'
    implementation "org.springframework.ai:spring-ai-starter-mcp-server-webmvc:1.0.0"
}
`

const helloController = `package com.atbug.rewrite.test.controller;

import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.PathVariable;
import org.springframework.web.bind.annotation.RestController;

@RestController
public class HelloController {

    /**
     * say hello to someone
     * @param name name of the guy you want to say hello
     * @return hello message
     */
    @GetMapping("/hi/{name}")
    public String helloTo(@PathVariable("name") String name) {
        return "Hello, " + name;
    }
}
`

const helloTool = `package com.atbug.rewrite.test.controller;

import org.springframework.ai.tool.annotation.Tool;
import org.springframework.ai.tool.annotation.ToolParam;
import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.PathVariable;
import org.springframework.web.bind.annotation.RestController;

@RestController
public class HelloController {

    /**
     * say hello to someone
     * @param name name of the guy you want to say hello
     * @return hello message
     */
    @GetMapping("/hi/{name}")
    @Tool(description = "say hello to someone")
    public String helloTo(@PathVariable("name") @ToolParam(description = "name of the guy you want to say hello") String name) {
        return "Hello, " + name;
    }
}
`

const userController = `package com.atbug.rewrite.test.controller;

import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.PostMapping;
import org.springframework.web.bind.annotation.RestController;

import java.util.ArrayList;
import java.util.List;

@RestController
public class UserController {

    public record User(String name, String email) {}

    private final List<User> users = new ArrayList<>(List.of(new User("John", "john@example.com"), new User("Jane", "jane@example.com")));

    @GetMapping("/users")
    public List<User> getUsers() {
        return users;
    }

    @PostMapping("/users")
    public String addUser(User user) {
        users.add(user);
        return "User added successfully!";
    }
}
`

const userTool = `package com.atbug.rewrite.test.controller;

import org.springframework.ai.tool.annotation.Tool;
import org.springframework.ai.tool.annotation.ToolParam;
import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.PostMapping;
import org.springframework.web.bind.annotation.RestController;

import java.util.ArrayList;
import java.util.List;

@RestController
public class UserController {

    public record User(String name, String email) {}

    private final List<User> users = new ArrayList<>(List.of(new User("John", "john@example.com"), new User("Jane", "jane@example.com")));

    @GetMapping("/users")
    @Tool(description = "getUsers")
    public List<User> getUsers() {
        return users;
    }

    @PostMapping("/users")
    @Tool(description = "addUser")
    public String addUser(@ToolParam(description = "user") User user) {
        users.add(user);
        return "User added successfully!";
    }
}
`

const mainApp = `package com.atbug.rewrite.test;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class SpringMainApp {

    public static void main(String[] args) {
        SpringApplication.run(SpringMainApp.class, args);
    }
}
`

const mainAppWithProvider = `package com.atbug.rewrite.test;

import com.atbug.rewrite.test.controller.HelloController;
import com.atbug.rewrite.test.controller.UserController;
import org.springframework.ai.tool.ToolCallbackProvider;
import org.springframework.ai.tool.method.MethodToolCallbackProvider;
import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;
import org.springframework.context.annotation.Bean;

@SpringBootApplication
public class SpringMainApp {

    public static void main(String[] args) {
        SpringApplication.run(SpringMainApp.class, args);
    }

    @Bean
    ToolCallbackProvider toolCallbackProvider(HelloController helloController, UserController userController) {
        return MethodToolCallbackProvider.builder()
                .toolObjects(helloController, userController)
                .build();
    }
}
`

const mainAppWithDuplicates = `package com.atbug.rewrite.test;

import org.springframework.ai.tool.ToolCallbackProvider;
import org.springframework.ai.tool.method.MethodToolCallbackProvider;
import org.springframework.boot.autoconfigure.SpringBootApplication;
import org.springframework.context.annotation.Bean;

@SpringBootApplication
public class SpringMainApp {

    @Bean
    ToolCallbackProvider toolCallbackProvider() {
        return MethodToolCallbackProvider.builder()
                .toolObjects(new Object())
                .build();
    }

    @Bean
    ToolCallbackProvider toolCallbackProvider2() {
        return MethodToolCallbackProvider.builder()
                .toolObjects(new Object())
                .build();
    }
}
`

const (
	pomPath   = "pom.xml"
	helloPath = "src/main/java/com/atbug/rewrite/test/controller/HelloController.java"
	userPath  = "src/main/java/com/atbug/rewrite/test/controller/UserController.java"
	mainPath  = "src/main/java/com/atbug/rewrite/test/SpringMainApp.java"
	propsPath = "src/main/resources/application.properties"
)
